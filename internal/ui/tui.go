package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"dobby-design-chat/internal/session"
	"dobby-design-chat/internal/transport"
)

// tea messages delivered back to Update from background commands.
type (
	outcomeMsg  transport.Outcome
	providerMsg string
)

// Model is the interactive chat surface. All state mutation happens inside
// Update; background commands only carry values back as messages.
type Model struct {
	session *session.Session
	state   *State
	styles  Styles

	textinput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	renderer  *glamour.TermRenderer

	showPane bool
	width    int
	height   int
	ready    bool
}

// NewModel wires the TUI around an already-constructed session state. The
// session itself is created by the caller with the returned state as its
// view.
func NewModel(sess *session.Session, state *State, styles Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "Describe the design you want... (Enter to send, Ctrl+C to exit)"
	ti.Focus()
	ti.Prompt = "│ "
	ti.CharLimit = 4096
	ti.Width = 80
	ti.PromptStyle = styles.Header
	ti.TextStyle = styles.User

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	vp := viewport.New(80, 20)
	vp.SetContent("")

	var renderer *glamour.TermRenderer
	if styles.Theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(78))
	} else {
		renderer, _ = glamour.NewTermRenderer(glamour.WithStylePath("light"), glamour.WithWordWrap(78))
	}

	return Model{
		session:   sess,
		state:     state,
		styles:    styles,
		textinput: ti,
		viewport:  vp,
		spinner:   sp,
		renderer:  renderer,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.lookupProviderCmd(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlD:
			m.showPane = !m.showPane
			m.resize()
			return m, nil

		case tea.KeyEnter:
			if m.state.Busy() {
				return m, nil
			}
			input := strings.TrimSpace(m.textinput.Value())
			if input == "exit" {
				return m, tea.Quit
			}
			if !m.session.Begin(input) {
				return m, nil
			}
			m.textinput.Reset()
			m.textinput.Blur()
			m.syncViewport()
			return m, tea.Batch(m.spinner.Tick, m.sendCmd())
		}

		if !m.state.Busy() {
			m.textinput, tiCmd = m.textinput.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		m.syncViewport()

	case spinner.TickMsg:
		if m.state.Busy() {
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}

	case outcomeMsg:
		m.session.Finish(transport.Outcome(msg))
		m.textinput.Focus()
		m.syncViewport()
		return m, textinput.Blink

	case providerMsg:
		m.state.SetProvider(string(msg))
	}

	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.styles.Header.Render("🧵 Dobby Textile Design Assistant") +
		m.styles.Status.Render("  provider: "+m.state.provider)

	chatView := m.viewport.View()
	if m.state.Busy() {
		chatView += "\n" + m.styles.Spinner.Render(m.spinner.View()) + m.styles.Placeholder.Render(" thinking...")
	}
	body := chatView
	if m.showPane {
		body = lipgloss.JoinHorizontal(lipgloss.Top, chatView, m.renderPane())
	}

	inputArea := m.styles.Input.Render(m.textinput.View())
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, inputArea, footer)
}

func (m *Model) resize() {
	if !m.ready {
		return
	}
	headerHeight := 1
	footerHeight := 1
	inputHeight := 3
	w := m.width - 4
	if m.showPane {
		w = m.width * 3 / 5
	}
	m.viewport.Width = w
	m.viewport.Height = m.height - headerHeight - footerHeight - inputHeight
	m.textinput.Width = m.width - 6
}

func (m *Model) syncViewport() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	var sb strings.Builder
	for _, e := range m.state.entries {
		switch e.kind {
		case entryUser:
			sb.WriteString(m.styles.User.Render("You: ") + e.text)
		case entryBot:
			sb.WriteString(m.styles.Bot.Render("Bot: " + m.renderMarkdown(e.text)))
		case entryError:
			sb.WriteString(m.styles.Error.Render("Bot: " + e.text))
		case entryPlaceholder:
			sb.WriteString(m.styles.Placeholder.Render("Bot: " + e.text))
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (m Model) renderMarkdown(text string) string {
	if m.renderer == nil {
		return text
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}

// renderPane draws the design summary and raw JSON side panel.
func (m Model) renderPane() string {
	label := m.styles.PanelLabel.Render
	lines := []string{
		m.styles.PanelTitle.Render("Design Summary"),
		label("intent:    ") + m.state.summary.Intent,
		label("template:  ") + m.state.summary.Template,
		label("mode:      ") + m.state.summary.GenerateMode,
		label("colors:    ") + m.state.summary.ColorCount,
		label("style:     ") + m.state.summary.Style,
		label("palette:   ") + m.state.colors,
		"",
		m.styles.PanelTitle.Render("Raw JSON"),
	}
	if m.state.jsonView == "" {
		lines = append(lines, m.styles.Placeholder.Render("no structured response yet"))
	} else {
		lines = append(lines, m.state.jsonView)
	}
	pane := strings.Join(lines, "\n")
	return m.styles.Panel.Width(m.width - m.viewport.Width - 6).Render(pane)
}

func (m Model) renderFooter() string {
	status := fmt.Sprintf("status: %s", orIdle(m.state.status))
	if m.state.confidence != "" {
		status += "  •  confidence: " + m.state.confidence
	}
	status += "  •  Ctrl+D design pane  •  Ctrl+C quit"
	return m.styles.Status.Render(status)
}

func (m Model) sendCmd() tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg(m.session.Send(context.Background()))
	}
}

func (m Model) lookupProviderCmd() tea.Cmd {
	return func() tea.Msg {
		return providerMsg(m.session.LookupProvider(context.Background()))
	}
}

func orIdle(status string) string {
	if status == "" {
		return "idle"
	}
	return status
}

// Run starts the interactive chat and blocks until the user quits.
func Run(sess *session.Session, state *State, styles Styles) error {
	p := tea.NewProgram(NewModel(sess, state, styles), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
