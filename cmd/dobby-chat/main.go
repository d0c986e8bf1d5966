// dobby-chat is the terminal client for the Dobby textile design assistant.
// It talks to the backend's /chat and /health endpoints and renders the
// conversation either as an interactive TUI or as a plain REPL.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dobby-design-chat/internal/config"
	"dobby-design-chat/internal/session"
	"dobby-design-chat/internal/transport"
	"dobby-design-chat/internal/ui"
)

var (
	serverURL string
	theme     string
	plain     bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "dobby-chat",
	Short: "Chat client for the Dobby textile design assistant",
	Long: `dobby-chat relays your messages to a design assistant backend and renders
the conversation together with any structured design parameters the
assistant extracts (summary panel, color composition, raw JSON).

Run without flags for the interactive TUI, or with --plain for a
line-oriented REPL.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if theme != "" {
		cfg.Theme = theme
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	client := transport.NewClient(cfg.ServerURL, nil, logger)

	if plain {
		view := ui.NewPlainView(os.Stdout)
		sess := session.New(client, view, logger)
		return ui.RunPlain(context.Background(), sess, os.Stdin, os.Stdout)
	}

	state := ui.NewState()
	sess := session.New(client, state, logger)
	return ui.Run(sess, state, ui.StylesFor(cfg.Theme))
}

// newLogger writes to the configured file so the TUI keeps the terminal to
// itself; without a file, logging is disabled.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{cfg.LogFile}
	zcfg.ErrorOutputPaths = []string{cfg.LogFile}
	if verbose || cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func main() {
	rootCmd.Flags().StringVar(&serverURL, "server", "", "backend base URL (overrides DOBBY_SERVER_URL)")
	rootCmd.Flags().StringVar(&theme, "theme", "", "UI theme: light or dark (overrides DOBBY_THEME)")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "line-oriented REPL instead of the TUI")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging (requires DOBBY_LOG_FILE)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
