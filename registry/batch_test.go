package registry

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/wellpipe/wellstore"
)

func TestRunNoTargets(t *testing.T) {
	// An empty database needs no browser; the run just reports zero work.
	store := wellstore.OpenMemory(t)
	u := NewUpdater(New(Config{}), store, UpdaterConfig{})

	sum, err := u.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum != (Summary{}) {
		t.Errorf("summary = %+v, want zeroes", sum)
	}
}

func TestWriteFailureCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failures.csv")
	failures := []failure{
		{WellFileNo: "11745", APINumber: "33-053-02102", DetailURL: "https://x/wells/a", Err: "no result"},
		{WellFileNo: "200", APINumber: "33-053-99999", Err: "timeout"},
	}
	if err := writeFailureCSV(path, failures); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "well_file_no" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "11745" || rows[1][3] != "no result" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][2] != "" {
		t.Errorf("row 2 detail url = %q, want empty", rows[2][2])
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 400)
	if got := truncate(long, 300); len(got) != 300 {
		t.Errorf("len = %d, want 300", len(got))
	}
	if got := truncate("short", 300); got != "short" {
		t.Errorf("got %q", got)
	}
}

func TestUpdaterConfigDefaults(t *testing.T) {
	var cfg UpdaterConfig
	cfg.defaults()
	if cfg.DelayMin <= 0 || cfg.DelayMax <= cfg.DelayMin {
		t.Errorf("delay bounds = %v/%v", cfg.DelayMin, cfg.DelayMax)
	}
	if cfg.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", cfg.Attempts)
	}
	if cfg.Logger == nil {
		t.Error("logger not defaulted")
	}
}
