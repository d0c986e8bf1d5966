// Package transport is the HTTP client for the design assistant backend.
// Every /chat exchange settles into a single Outcome value: callers never see
// a Go error and never need separate handling for network versus protocol
// failures.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"dobby-design-chat/internal/design"
	"dobby-design-chat/internal/types"
)

// Kind classifies a settled /chat exchange.
type Kind int

const (
	KindReply Kind = iota
	KindStructured
	KindClarification
	KindError
)

// Outcome is the uniform result of SendTurn. Exactly one branch is
// populated: Reply for free-text turns, Structured for design payloads
// (KindClarification when the payload asks a follow-up question), Err for
// failures of any origin.
type Outcome struct {
	Kind       Kind
	Reply      string
	Structured *design.Structured
	Err        string
	// Network marks failures that happened below the protocol (connection
	// errors, non-JSON bodies) as opposed to server-reported ones.
	Network bool
}

// ProviderUnknown is reported when /health cannot be reached or parsed.
const ProviderUnknown = "unknown"

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds a client for the given base URL. httpClient and logger
// may be nil; tests inject an httptest client. No timeout is installed here:
// a deadline on the caller's context is honored, but by default a call that
// never resolves keeps the turn open.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// SendTurn POSTs the full message history to /chat and classifies the reply.
// history must be non-empty with the newest user message last; the caller
// owns that invariant.
func (c *Client) SendTurn(ctx context.Context, history []openai.ChatCompletionMessage) Outcome {
	body, err := json.Marshal(types.ChatRequest{Messages: history})
	if err != nil {
		return networkFailure(fmt.Sprintf("encode request: %v", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return networkFailure(fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("chat request failed", zap.Error(err))
		return networkFailure(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkFailure(fmt.Sprintf("read response: %v", err))
	}

	var cr types.ChatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		if resp.StatusCode >= 300 {
			return networkFailure(fmt.Sprintf("server returned HTTP %d", resp.StatusCode))
		}
		return networkFailure(fmt.Sprintf("invalid response body: %v", err))
	}
	if cr.Error != "" {
		return Outcome{Kind: KindError, Err: cr.Error}
	}
	if resp.StatusCode >= 300 {
		return networkFailure(fmt.Sprintf("server returned HTTP %d", resp.StatusCode))
	}

	c.logger.Debug("chat turn settled",
		zap.Int("history", len(history)),
		zap.Bool("structured", cr.Structured != nil))

	if cr.Structured != nil {
		if cr.Structured.ClarificationRequired {
			return Outcome{Kind: KindClarification, Reply: cr.Reply, Structured: cr.Structured}
		}
		return Outcome{Kind: KindStructured, Reply: cr.Reply, Structured: cr.Structured}
	}
	return Outcome{Kind: KindReply, Reply: cr.Reply}
}

// FetchProvider queries /health once and returns the active provider name.
// Any failure is non-fatal and collapses to ProviderUnknown.
func (c *Client) FetchProvider(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return ProviderUnknown
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("health request failed", zap.Error(err))
		return ProviderUnknown
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ProviderUnknown
	}
	var hr types.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&hr); err != nil || hr.Provider == "" {
		return ProviderUnknown
	}
	return hr.Provider
}

func networkFailure(msg string) Outcome {
	return Outcome{Kind: KindError, Err: msg, Network: true}
}
