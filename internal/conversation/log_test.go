package conversation

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestAppendPreservesOrder(t *testing.T) {
	l := NewLog()
	l.Append(openai.ChatMessageRoleUser, "first")
	l.Append(openai.ChatMessageRoleAssistant, "second")
	l.Append(openai.ChatMessageRoleUser, "third")

	msgs := l.Snapshot()
	assert.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, openai.ChatMessageRoleAssistant, msgs[1].Role)
	assert.Equal(t, "third", msgs[2].Content)
	assert.Equal(t, 3, l.Len())
}

func TestSnapshotIsACopy(t *testing.T) {
	l := NewLog()
	l.Append(openai.ChatMessageRoleUser, "original")

	snap := l.Snapshot()
	snap[0].Content = "mutated"
	snap = append(snap, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: "extra"})
	_ = snap

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, "original", l.Snapshot()[0].Content)
}

func TestEmptyLog(t *testing.T) {
	l := NewLog()
	assert.Empty(t, l.Snapshot())
	assert.Zero(t, l.Len())
}
