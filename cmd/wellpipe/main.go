// Command wellpipe ingests a directory of completion-report PDFs into the
// well database: extract text, parse fields, upsert, then fix coordinate
// outliers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/hazyhaar/wellpipe/config"
	"github.com/hazyhaar/wellpipe/pdftext"
	"github.com/hazyhaar/wellpipe/wellparse"
	"github.com/hazyhaar/wellpipe/wellstore"
)

func main() {
	configPath := flag.String("config", "", "path to wellpipe.yaml")
	pdfDir := flag.String("pdf-dir", "", "override pdf directory")
	dbPath := flag.String("db", "", "override database path")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *pdfDir != "" {
		cfg.PDFDir = *pdfDir
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		slog.Error("ingest failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, err := wellstore.Open(cfg.DBPath, wellstore.WithMkdirAll(), wellstore.WithLogger(logger))
	if err != nil {
		return err
	}
	defer store.Close()

	extractor := pdftext.New(pdftext.Config{DPI: cfg.OCRDPI, Logger: logger})

	paths, err := pdftext.ListPDFs(cfg.PDFDir)
	if err != nil {
		return err
	}
	slog.Info("ingest starting", "pdf_dir", cfg.PDFDir, "files", len(paths), "workers", cfg.Workers)

	// Extraction dominates the runtime and is safe to parallelize; the
	// store serializes writes behind its own connection handling.
	var mu sync.Mutex
	var ingested, skipped, failed int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for _, path := range paths {
		g.Go(func() error {
			text, err := extractor.TextForFile(gctx, path)
			if err != nil {
				slog.Error("extraction failed", "path", path, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}

			well, stims := wellparse.Parse(text, filepath.Base(path))
			if well.WellFileNo == "" {
				slog.Warn("no well file number found", "path", path)
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}

			if err := store.UpsertWell(gctx, well); err != nil {
				return err
			}
			if err := store.ReplaceStimulations(gctx, well.WellFileNo, stims); err != nil {
				return err
			}

			mu.Lock()
			ingested++
			if len(stims) == 0 {
				skipped++
			}
			mu.Unlock()
			slog.Info("ingested well",
				"path", path, "well_file_no", well.WellFileNo, "stimulations", len(stims))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fixed, err := store.FixSpatialOutliers(ctx)
	if err != nil {
		return err
	}

	slog.Info("ingest done",
		"files", len(paths), "ingested", ingested,
		"without_stimulations", skipped, "failed", failed,
		"outliers_fixed", fixed)
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
