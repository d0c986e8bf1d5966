package stubserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dobby-design-chat/internal/transport"
	"dobby-design-chat/internal/types"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog("../../prompts/templates.yaml")
	require.NoError(t, err, "shipped catalogue must load")
	return c
}

func testServer(t *testing.T) (*httptest.Server, *transport.Client) {
	t.Helper()
	srv := httptest.NewServer(NewServer(testCatalog(t), "stub", nil).Router())
	t.Cleanup(srv.Close)
	return srv, transport.NewClient(srv.URL, nil, nil)
}

func userTurn(content string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: content}}
}

func TestHealthReportsProvider(t *testing.T) {
	_, client := testServer(t)
	assert.Equal(t, "stub", client.FetchProvider(context.Background()))
}

func TestChatMatchesStripeTemplate(t *testing.T) {
	_, client := testServer(t)

	out := client.SendTurn(context.Background(), userTurn("I want a red striped tie"))

	require.Equal(t, transport.KindStructured, out.Kind)
	require.NotNil(t, out.Structured)
	assert.Equal(t, "stripe_basic", out.Structured.Template)
	assert.Equal(t, "stripe", out.Structured.Intent)
	require.NotNil(t, out.Structured.Confidence)
	assert.InDelta(t, 0.82, *out.Structured.Confidence, 1e-9)
	require.NotNil(t, out.Structured.Design)
	assert.Equal(t, "Twill", out.Structured.Design.Weave)
	require.Len(t, out.Structured.Colors, 2)
	assert.Equal(t, "Navy", out.Structured.Colors[0].Name)
}

func TestChatAsksForClarification(t *testing.T) {
	_, client := testServer(t)

	out := client.SendTurn(context.Background(), userTurn("I need a fabric"))

	require.Equal(t, transport.KindClarification, out.Kind)
	assert.Equal(t, "What occasion is this design for?", out.Structured.Question)
}

func TestChatFallsBackToPlainReply(t *testing.T) {
	_, client := testServer(t)

	out := client.SendTurn(context.Background(), userTurn("hello over there"))

	require.Equal(t, transport.KindReply, out.Kind)
	assert.Contains(t, out.Reply, "dobby looms")
}

func TestChatErrorTrigger(t *testing.T) {
	_, client := testServer(t)

	out := client.SendTurn(context.Background(), userTurn("please force error now"))

	require.Equal(t, transport.KindError, out.Kind)
	assert.Equal(t, "synthetic provider failure", out.Err)
}

func TestChatUsesNewestUserMessage(t *testing.T) {
	_, client := testServer(t)

	out := client.SendTurn(context.Background(), []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: "I want a gingham shirt"},
		{Role: openai.ChatMessageRoleAssistant, Content: "What occasion is this design for?"},
		{Role: openai.ChatMessageRoleUser, Content: "an ombre gradient actually"},
	})

	require.Equal(t, transport.KindStructured, out.Kind)
	assert.Equal(t, "gradient_stripe", out.Structured.Template)
}

func TestChatRejectsInvalidJSON(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Post(srv.URL+"/chat", "application/json", bytes.NewBufferString("{nope"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var er types.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
	assert.Equal(t, "invalid JSON body", er.Error)
}

func TestChatRequiresUserMessage(t *testing.T) {
	_, client := testServer(t)

	out := client.SendTurn(context.Background(), []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleAssistant, Content: "orphaned"},
	})

	require.Equal(t, transport.KindError, out.Kind)
	assert.Equal(t, "message is required", out.Err)
}

func TestLoadCatalogRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates: []\n"), 0o644))

	_, err := LoadCatalog(path)
	assert.Error(t, err)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCatalogMatchIsCaseInsensitive(t *testing.T) {
	c := testCatalog(t)
	tpl, ok := c.Match("A PLAID blanket")
	require.True(t, ok)
	assert.Equal(t, "classic_check", tpl.Name)
}
