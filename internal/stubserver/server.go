// Package stubserver is a local stand-in for the design assistant backend.
// It implements exactly the documented /chat and /health contract with
// canned answers, so the client can be developed and tested without a model
// provider behind it. It is a development harness, not part of the shipped
// client.
package stubserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"dobby-design-chat/internal/design"
	"dobby-design-chat/internal/types"
)

// ErrorTrigger in a user message makes the stub answer with a server-style
// error envelope, for exercising the client's failure path.
const ErrorTrigger = "force error"

type Server struct {
	router   *chi.Mux
	catalog  *Catalog
	provider string
	logger   *zap.Logger
}

func NewServer(catalog *Catalog, provider string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if provider == "" {
		provider = "stub"
	}
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s := &Server{router: r, catalog: catalog, provider: provider, logger: logger}
	r.Use(s.requestLogger)
	r.Get("/health", s.handleHealth)
	r.Post("/chat", s.handleChat)
	return s
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthResponse{Status: "ok", Provider: s.provider})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	message := lastUserMessage(req.Messages)
	if strings.TrimSpace(message) == "" {
		s.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	if strings.Contains(strings.ToLower(message), ErrorTrigger) {
		s.writeError(w, http.StatusInternalServerError, "synthetic provider failure")
		return
	}

	if tpl, ok := s.catalog.Match(message); ok {
		structured, err := tpl.Build()
		if err != nil {
			s.logger.Error("bad template in catalogue", zap.String("template", tpl.Name), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "catalogue template is invalid")
			return
		}
		writeJSON(w, http.StatusOK, types.ChatResponse{Reply: tpl.Reply, Structured: structured})
		return
	}

	if s.catalog.WantsClarification(message) {
		writeJSON(w, http.StatusOK, types.ChatResponse{
			Structured: &design.Structured{
				ClarificationRequired: true,
				Question:              s.catalog.Clarify.Question,
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, types.ChatResponse{Reply: s.catalog.FallbackReply})
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, types.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func lastUserMessage(msgs []openai.ChatCompletionMessage) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == openai.ChatMessageRoleUser {
			return msgs[i].Content
		}
	}
	return ""
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}
