// Package session is the view-model behind the chat surfaces. It owns the
// conversation log, the busy gate and the last structured payload, and turns
// transport outcomes into calls on an abstract View, so any UI toolkit (and
// any test) can sit on the other side.
package session

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"dobby-design-chat/internal/conversation"
	"dobby-design-chat/internal/design"
	"dobby-design-chat/internal/transport"
)

// Status labels pushed to the view.
const (
	StatusReady         = "ready"
	StatusAnalyzing     = "analyzing"
	StatusAwaitingInput = "awaiting input"
	StatusError         = "error"
)

// PlaceholderText is the transient bot entry shown while a request is
// outstanding.
const PlaceholderText = "Analyzing your request..."

// View is the rendering surface the session drives. Implementations must
// make RemovePlaceholder a no-op when no placeholder entry exists.
type View interface {
	AppendUser(content string)
	AppendBot(content string)
	AppendError(content string)
	AppendPlaceholder(content string)
	RemovePlaceholder()

	SetStatus(label string)
	SetConfidence(pct string)
	SetSummary(s design.Summary)
	SetColors(colors string)
	SetJSON(raw string)
	SetBusy(busy bool)
	SetProvider(name string)
}

// Session is single-flight by construction: Begin refuses input while a turn
// is outstanding, so at most one /chat request exists at a time. Methods are
// meant to be called from one event loop and are not safe for concurrent
// use; only Send may run on another goroutine between Begin and Finish.
type Session struct {
	log    *conversation.Log
	client *transport.Client
	view   View
	logger *zap.Logger

	busy       bool
	structured *design.Structured
}

func New(client *transport.Client, view View, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		log:    conversation.NewLog(),
		client: client,
		view:   view,
		logger: logger,
	}
}

func (s *Session) Busy() bool { return s.busy }

// Structured returns the last structured payload, for copy/export. Nil until
// the first structured turn.
func (s *Session) Structured() *design.Structured { return s.structured }

// History returns the full message sequence to transmit.
func (s *Session) History() []openai.ChatCompletionMessage { return s.log.Snapshot() }

// Begin starts a turn: appends the user message to log and transcript,
// raises the busy gate and shows the placeholder. Returns false (and does
// nothing) for empty input or while a turn is already outstanding.
func (s *Session) Begin(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" || s.busy {
		return false
	}
	s.log.Append(openai.ChatMessageRoleUser, input)
	s.view.AppendUser(input)
	s.busy = true
	s.view.SetBusy(true)
	s.view.SetStatus(StatusAnalyzing)
	s.view.AppendPlaceholder(PlaceholderText)
	return true
}

// Send performs the outstanding exchange. Safe to call off the event loop;
// it touches only the transport and a log snapshot.
func (s *Session) Send(ctx context.Context) transport.Outcome {
	return s.client.SendTurn(ctx, s.History())
}

// Finish settles the turn: removes the placeholder exactly once, renders the
// outcome, and always releases the busy gate as the final step regardless of
// branch.
func (s *Session) Finish(out transport.Outcome) {
	s.view.RemovePlaceholder()
	defer func() {
		s.busy = false
		s.view.SetBusy(false)
	}()

	switch out.Kind {
	case transport.KindError:
		prefix := "Error: "
		if out.Network {
			prefix = "Network Error: "
		}
		// Errors are terminal for this turn only and never enter the
		// history sent on later requests.
		s.view.AppendError(prefix + out.Err)
		s.view.SetStatus(StatusError)
		s.logger.Warn("turn failed", zap.String("error", out.Err), zap.Bool("network", out.Network))

	case transport.KindClarification:
		p := design.Project(out.Structured)
		s.structured = out.Structured
		s.appendBotTurn(p.Question)
		s.view.SetStatus(StatusAwaitingInput)

	case transport.KindStructured:
		p := design.Project(out.Structured)
		s.structured = out.Structured
		s.appendBotTurn("Design parameters ready: template \"" + p.Template + "\", intent \"" + p.Intent + "\".")
		s.view.SetSummary(p.Summary)
		s.view.SetColors(p.Colors)
		s.view.SetJSON(p.JSON)
		s.view.SetConfidence(p.Confidence)
		s.view.SetStatus(StatusReady)

	default: // KindReply
		s.appendBotTurn(out.Reply)
		s.view.SetStatus(StatusReady)
	}
}

// ResolveProvider queries /health once and pushes the provider name (or
// "unknown") to the view. Fire-and-forget relative to the rest of the UI.
func (s *Session) ResolveProvider(ctx context.Context) {
	s.view.SetProvider(s.LookupProvider(ctx))
}

// LookupProvider returns the provider name without touching the view, for
// callers that apply it on their own event loop.
func (s *Session) LookupProvider(ctx context.Context) string {
	return s.client.FetchProvider(ctx)
}

// appendBotTurn shows a successful bot line and records it as the assistant
// turn for subsequent requests.
func (s *Session) appendBotTurn(content string) {
	s.view.AppendBot(content)
	s.log.Append(openai.ChatMessageRoleAssistant, content)
}
