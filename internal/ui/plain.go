package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"dobby-design-chat/internal/design"
	"dobby-design-chat/internal/session"
)

// PlainView renders the session onto a line-oriented stream, for terminals
// (and scripts) where the full TUI is unwanted. Placeholders are skipped:
// line output cannot be retracted, so RemovePlaceholder is a natural no-op.
type PlainView struct {
	out io.Writer
}

func NewPlainView(out io.Writer) *PlainView {
	return &PlainView{out: out}
}

func (v *PlainView) AppendUser(content string) {}

func (v *PlainView) AppendBot(content string) {
	fmt.Fprintf(v.out, "Bot: %s\n\n", content)
}

func (v *PlainView) AppendError(content string) {
	fmt.Fprintf(v.out, "Bot: %s\n\n", content)
}

func (v *PlainView) AppendPlaceholder(content string) {}

func (v *PlainView) RemovePlaceholder() {}

func (v *PlainView) SetStatus(label string) {}

func (v *PlainView) SetConfidence(pct string) {}

func (v *PlainView) SetSummary(s design.Summary) {
	fmt.Fprintf(v.out, "     intent=%s template=%s mode=%s colors=%s style=%s\n",
		s.Intent, s.Template, s.GenerateMode, s.ColorCount, s.Style)
}

func (v *PlainView) SetColors(colors string) {
	if colors != design.Placeholder {
		fmt.Fprintf(v.out, "     palette: %s\n", colors)
	}
}

func (v *PlainView) SetJSON(raw string) {
	if raw != "" {
		fmt.Fprintf(v.out, "%s\n\n", raw)
	}
}

func (v *PlainView) SetBusy(busy bool) {}

func (v *PlainView) SetProvider(name string) {
	fmt.Fprintf(v.out, "   Using provider: %s\n\n", name)
}

// RunPlain runs a read-eval-print loop: read a line, run the turn, print
// the reply, until EOF or "exit".
func RunPlain(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "🤖 Dobby Textile Design Assistant started (type 'exit' to quit)")
	sess.ResolveProvider(ctx)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "exit" {
			fmt.Fprintln(out, "Goodbye 👋")
			return nil
		}
		if !sess.Begin(line) {
			continue
		}
		sess.Finish(sess.Send(ctx))
	}
	return scanner.Err()
}
