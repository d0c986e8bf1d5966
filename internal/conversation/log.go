// Package conversation holds the in-memory message log for one chat session.
// The log is append-only and lives exactly as long as the process; the server
// is stateless, so this log is the sole source of conversational context.
package conversation

import (
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// Log is an ordered, append-only sequence of role-tagged messages. Safe for
// concurrent use: the UI loop appends while an in-flight request reads a
// snapshot.
type Log struct {
	mu   sync.RWMutex
	msgs []openai.ChatCompletionMessage
}

func NewLog() *Log {
	return &Log{}
}

// Append adds a message at the end of the sequence. There is no size cap and
// no deletion; a single session stays well within memory.
func (l *Log) Append(role, content string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, openai.ChatCompletionMessage{Role: role, Content: content})
}

// Snapshot returns a copy of the full sequence for transmission.
func (l *Log) Snapshot() []openai.ChatCompletionMessage {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]openai.ChatCompletionMessage, len(l.msgs))
	copy(out, l.msgs)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.msgs)
}
