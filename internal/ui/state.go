package ui

import "dobby-design-chat/internal/design"

// entryKind tags transcript entries so the renderers can style them.
type entryKind int

const (
	entryUser entryKind = iota
	entryBot
	entryError
	entryPlaceholder
)

type entry struct {
	kind entryKind
	text string
}

// State is the derived UI state both surfaces render from. It implements
// session.View; the session is its only writer.
type State struct {
	entries    []entry
	summary    design.Summary
	colors     string
	jsonView   string
	confidence string
	provider   string
	status     string
	busy       bool
}

func NewState() *State {
	return &State{
		summary:  design.Project(nil).Summary,
		colors:   design.Placeholder,
		provider: "...",
	}
}

func (s *State) AppendUser(content string) {
	s.entries = append(s.entries, entry{entryUser, content})
}

func (s *State) AppendBot(content string) {
	s.entries = append(s.entries, entry{entryBot, content})
}

func (s *State) AppendError(content string) {
	s.entries = append(s.entries, entry{entryError, content})
}

func (s *State) AppendPlaceholder(content string) {
	s.entries = append(s.entries, entry{entryPlaceholder, content})
}

// RemovePlaceholder drops the most recently appended placeholder entry. A
// no-op when none exists, so settling a turn twice cannot corrupt the
// transcript.
func (s *State) RemovePlaceholder() {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].kind == entryPlaceholder {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *State) SetStatus(label string) { s.status = label }

func (s *State) SetConfidence(pct string) { s.confidence = pct }

func (s *State) SetSummary(sum design.Summary) { s.summary = sum }

func (s *State) SetColors(colors string) { s.colors = colors }

func (s *State) SetJSON(raw string) { s.jsonView = raw }

func (s *State) SetBusy(busy bool) { s.busy = busy }

func (s *State) SetProvider(name string) { s.provider = name }

func (s *State) Busy() bool { return s.busy }
