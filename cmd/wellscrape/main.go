// Command wellscrape fills the scraped_* columns from the public well
// registry for every stored well that still lacks them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/wellpipe/config"
	"github.com/hazyhaar/wellpipe/registry"
	"github.com/hazyhaar/wellpipe/wellstore"
)

func main() {
	configPath := flag.String("config", "", "path to wellpipe.yaml")
	dbPath := flag.String("db", "", "override database path")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		slog.Error("scrape failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, err := wellstore.Open(cfg.DBPath, wellstore.WithLogger(logger))
	if err != nil {
		return err
	}
	defer store.Close()

	client := registry.New(registry.Config{
		BaseURL: cfg.Registry.BaseURL,
		Logger:  logger,
	})
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Close()

	updater := registry.NewUpdater(client, store, registry.UpdaterConfig{
		DelayMin:   time.Duration(cfg.Registry.DelayMinMS) * time.Millisecond,
		DelayMax:   time.Duration(cfg.Registry.DelayMaxMS) * time.Millisecond,
		FailureCSV: cfg.Registry.FailureCSV,
		Logger:     logger,
	})

	sum, err := updater.Run(ctx)
	if err != nil {
		return err
	}
	if sum.Failures > 0 {
		slog.Warn("some wells failed", "failures", sum.Failures, "csv", cfg.Registry.FailureCSV)
	}
	return nil
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
