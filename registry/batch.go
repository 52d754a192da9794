package registry

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hazyhaar/wellpipe/wellstore"
)

// UpdaterConfig configures a batch scrape run.
type UpdaterConfig struct {
	// DelayMin/DelayMax bound the randomized pause before each lookup.
	// Defaults: 700ms / 1600ms.
	DelayMin time.Duration
	DelayMax time.Duration

	// Attempts per well before it is recorded as a failure. Default: 3.
	Attempts int

	// FailureCSV is where failed lookups are written. Empty disables the file.
	FailureCSV string

	Logger *slog.Logger
}

func (c *UpdaterConfig) defaults() {
	if c.DelayMin <= 0 {
		c.DelayMin = 700 * time.Millisecond
	}
	if c.DelayMax <= c.DelayMin {
		c.DelayMax = c.DelayMin + 900*time.Millisecond
	}
	if c.Attempts <= 0 {
		c.Attempts = 3
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Updater runs registry lookups for every well still missing scraped data.
type Updater struct {
	cfg    UpdaterConfig
	client *Client
	store  *wellstore.Store
}

// failure records one well the scrape could not resolve.
type failure struct {
	WellFileNo string
	APINumber  string
	DetailURL  string
	Err        string
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Targets  int
	Updated  int
	Failures int
}

// NewUpdater creates an Updater over an already-connected client.
func NewUpdater(client *Client, store *wellstore.Store, cfg UpdaterConfig) *Updater {
	cfg.defaults()
	return &Updater{cfg: cfg, client: client, store: store}
}

// Run scrapes every well with an API number and incomplete registry data.
// Failures do not stop the run; they are logged, counted, and written to
// the failure CSV at the end.
func (u *Updater) Run(ctx context.Context) (Summary, error) {
	log := u.cfg.Logger

	targets, err := u.store.ListScrapeTargets(ctx)
	if err != nil {
		return Summary{}, err
	}
	log.Info("registry: scrape run starting", "targets", len(targets))

	sum := Summary{Targets: len(targets)}
	var failures []failure

	for i, t := range targets {
		if err := u.politeSleep(ctx); err != nil {
			return sum, err
		}
		log.Info("registry: scraping well",
			"progress", fmt.Sprintf("%d/%d", i+1, len(targets)),
			"well_file_no", t.WellFileNo, "api_number", t.APINumber)

		detailURL, err := u.updateOne(ctx, t)
		if err != nil {
			if ctx.Err() != nil {
				return sum, ctx.Err()
			}
			log.Warn("registry: well failed",
				"well_file_no", t.WellFileNo, "error", err)
			failures = append(failures, failure{
				WellFileNo: t.WellFileNo,
				APINumber:  t.APINumber,
				DetailURL:  detailURL,
				Err:        truncate(err.Error(), 300),
			})
			continue
		}
		sum.Updated++
	}

	sum.Failures = len(failures)
	if len(failures) > 0 && u.cfg.FailureCSV != "" {
		if err := writeFailureCSV(u.cfg.FailureCSV, failures); err != nil {
			log.Error("registry: write failure csv", "error", err)
		}
	}

	log.Info("registry: scrape run done",
		"targets", sum.Targets, "updated", sum.Updated, "failures", sum.Failures)
	return sum, nil
}

// updateOne resolves and stores one well, retrying with linear backoff.
// It returns the last detail URL reached so failures can be retraced.
func (u *Updater) updateOne(ctx context.Context, t wellstore.ScrapeTarget) (string, error) {
	var lastURL string
	var lastErr error

	for attempt := 1; attempt <= u.cfg.Attempts; attempt++ {
		if attempt > 1 {
			if err := sleepCtx(ctx, time.Duration(attempt)*1500*time.Millisecond); err != nil {
				return lastURL, err
			}
		}

		detailURL, err := u.client.FindDetailURL(ctx, t.APINumber)
		if err != nil {
			lastErr = err
			continue
		}
		lastURL = detailURL

		info, err := u.client.FetchDetail(ctx, detailURL)
		if err != nil {
			lastErr = err
			continue
		}

		if err := u.store.UpdateScraped(ctx, t.WellFileNo, info); err != nil {
			return lastURL, err
		}
		return lastURL, nil
	}
	return lastURL, lastErr
}

func (u *Updater) politeSleep(ctx context.Context) error {
	span := u.cfg.DelayMax - u.cfg.DelayMin
	d := u.cfg.DelayMin + time.Duration(rand.Int64N(int64(span)))
	return sleepCtx(ctx, d)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func writeFailureCSV(path string, failures []failure) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("registry: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"well_file_no", "api_number", "detail_url", "error"}); err != nil {
		return err
	}
	for _, rec := range failures {
		if err := w.Write([]string{rec.WellFileNo, rec.APINumber, rec.DetailURL, rec.Err}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("registry: write %s: %w", path, err)
	}
	return nil
}
