package ui

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dobby-design-chat/internal/session"
	"dobby-design-chat/internal/transport"
)

func TestRunPlainConversation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			_, _ = w.Write([]byte(`{"provider":"groq"}`))
			return
		}
		_, _ = w.Write([]byte(`{"reply":"warp runs lengthwise"}`))
	}))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	view := NewPlainView(&out)
	sess := session.New(transport.NewClient(srv.URL, nil, nil), view, nil)

	in := strings.NewReader("what is warp?\nexit\n")
	require.NoError(t, RunPlain(context.Background(), sess, in, &out))

	got := out.String()
	assert.Contains(t, got, "Using provider: groq")
	assert.Contains(t, got, "Bot: warp runs lengthwise")
	assert.Contains(t, got, "Goodbye")
}

func TestRunPlainSurfacesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	view := NewPlainView(&out)
	sess := session.New(transport.NewClient(srv.URL, nil, nil), view, nil)

	in := strings.NewReader("hello\n")
	require.NoError(t, RunPlain(context.Background(), sess, in, &out))

	got := out.String()
	assert.Contains(t, got, "Using provider: unknown")
	assert.Contains(t, got, "Bot: Error: rate limited")
}
