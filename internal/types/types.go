package types

import (
	openai "github.com/sashabaranov/go-openai"

	"dobby-design-chat/internal/design"
)

// ChatRequest is the body POSTed to /chat. The client always sends the full
// accumulated history; the server holds no conversation state.
type ChatRequest struct {
	Messages []openai.ChatCompletionMessage `json:"messages"`
}

// ChatResponse is the uniform /chat reply shape. Reply carries free-text
// turns (and may be empty when Structured holds the whole answer),
// Structured carries parsed design parameters, Error a server-classified
// failure.
type ChatResponse struct {
	Reply      string             `json:"reply,omitempty"`
	Structured *design.Structured `json:"structured,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// HealthResponse is the /health body. Only Provider is consumed; any other
// fields are ignored.
type HealthResponse struct {
	Status   string `json:"status,omitempty"`
	Provider string `json:"provider,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
