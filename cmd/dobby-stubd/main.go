// dobby-stubd serves the documented /chat and /health contract with canned
// design templates, standing in for the real assistant backend during client
// development and testing.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dobby-design-chat/internal/stubserver"
)

func main() {
	_ = godotenv.Load()
	port := envDefault("PORT", "5000")
	provider := envDefault("LLM_PROVIDER", "stub")
	catalogPath := envDefault("DOBBY_TEMPLATES", "./prompts/templates.yaml")

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	catalog, err := stubserver.LoadCatalog(catalogPath)
	if err != nil {
		logger.Fatal("load template catalogue", zap.String("path", catalogPath), zap.Error(err))
	}

	s := stubserver.NewServer(catalog, provider, logger)
	addr := ":" + port
	logger.Info("dobby stub server listening", zap.String("addr", addr), zap.String("provider", provider))
	if err := http.ListenAndServe(addr, s.Router()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
