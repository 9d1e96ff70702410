package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/platform/httpapi"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagAPIAddr  string
	flagMaxGames int
	flagLogLevel string
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP game API",
	Long: `Serve boards over a JSON HTTP API. Many clients may play at once;
moves on one board are applied one at a time.

Endpoints:
  POST   /v1/games              {"preset":"expert"} or {"height":9,"width":9,"mines":10,"seed":1}
  GET    /v1/games              list games
  GET    /v1/games/{id}         board rows and state
  POST   /v1/games/{id}/uncover {"row":0,"col":0}
  GET    /v1/games/{id}/analysis  3BV and openings of a finished board
  DELETE /v1/games/{id}
  GET    /healthz

Examples:
  mines api
  mines api --addr 127.0.0.1:9000 --log-level debug`,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address (host:port)")
	apiCmd.Flags().IntVar(&flagMaxGames, "max-games", 10000, "Maximum hosted games (0 = unlimited)")
	apiCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runAPI(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mines-api",
		Level:           level,
	})

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := httpapi.DefaultConfig()
	cfg.Address = flagAPIAddr
	cfg.MaxGames = flagMaxGames
	server := httpapi.New(cfg, settings, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
