// Package wellstore persists parsed well records in SQLite.
//
// The same well file number can be ingested many times: a re-parse after an
// OCR improvement, a registry refresh, a manual correction. Upserts merge
// field-by-field, an incoming empty value never erases a previously
// extracted one, and stimulation rows are replaced wholesale so re-runs
// stay idempotent.
//
// Usage:
//
//	import _ "modernc.org/sqlite"
//	store, err := wellstore.Open("wells.db")
//
// In tests:
//
//	store := wellstore.OpenMemory(t)
package wellstore

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Store wraps the SQLite database holding well and stimulation data.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

type config struct {
	busyTimeout int
	mkdirAll    bool
	logger      *slog.Logger
}

// Option customises Open behaviour.
type Option func(*config)

// WithBusyTimeout sets PRAGMA busy_timeout in milliseconds. Default: 10000.
func WithBusyTimeout(ms int) Option { return func(c *config) { c.busyTimeout = ms } }

// WithMkdirAll creates parent directories of the database path before opening.
func WithMkdirAll() Option { return func(c *config) { c.mkdirAll = true } }

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option { return func(c *config) { c.logger = l } }

const schema = `
CREATE TABLE IF NOT EXISTS well_info (
    well_file_no      TEXT PRIMARY KEY,
    api_number        TEXT NOT NULL DEFAULT '',
    well_name         TEXT NOT NULL DEFAULT '',
    operator          TEXT NOT NULL DEFAULT '',
    field_name        TEXT NOT NULL DEFAULT '',
    location_desc     TEXT NOT NULL DEFAULT '',
    section           TEXT NOT NULL DEFAULT '',
    township          TEXT NOT NULL DEFAULT '',
    range_dir         TEXT NOT NULL DEFAULT '',
    county            TEXT NOT NULL DEFAULT '',
    state             TEXT NOT NULL DEFAULT 'ND',
    latitude          REAL,
    longitude         REAL,
    elevation_gl      TEXT NOT NULL DEFAULT '',
    elevation_kb      TEXT NOT NULL DEFAULT '',
    spud_date         TEXT NOT NULL DEFAULT '',
    completion_date   TEXT NOT NULL DEFAULT '',
    well_status       TEXT NOT NULL DEFAULT '',
    well_type         TEXT NOT NULL DEFAULT '',
    total_depth       TEXT NOT NULL DEFAULT '',
    producing_method  TEXT NOT NULL DEFAULT '',
    surface_casing    TEXT NOT NULL DEFAULT '',
    production_casing TEXT NOT NULL DEFAULT '',
    pdf_filename      TEXT NOT NULL DEFAULT '',
    scraped_well_status    TEXT NOT NULL DEFAULT '',
    scraped_well_type      TEXT NOT NULL DEFAULT '',
    scraped_closest_city   TEXT NOT NULL DEFAULT '',
    scraped_oil_production TEXT NOT NULL DEFAULT '',
    scraped_gas_production TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_well_county ON well_info(county);

CREATE TABLE IF NOT EXISTS stimulation_data (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    well_file_no TEXT NOT NULL REFERENCES well_info(well_file_no)
                 ON DELETE CASCADE ON UPDATE CASCADE,
    date_stimulated             TEXT NOT NULL DEFAULT '',
    stimulated_formation        TEXT NOT NULL DEFAULT '',
    top_ft                      TEXT NOT NULL DEFAULT '',
    bottom_ft                   TEXT NOT NULL DEFAULT '',
    stimulation_stages          TEXT NOT NULL DEFAULT '',
    volume                      TEXT NOT NULL DEFAULT '',
    volume_units                TEXT NOT NULL DEFAULT '',
    treatment_type              TEXT NOT NULL DEFAULT '',
    acid_pct                    TEXT NOT NULL DEFAULT '',
    lbs_proppant                TEXT NOT NULL DEFAULT '',
    max_treatment_pressure_psi  TEXT NOT NULL DEFAULT '',
    max_treatment_rate_bbls_min TEXT NOT NULL DEFAULT '',
    details                     TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_stim_well ON stimulation_data(well_file_no);
`

// Open opens (and if necessary creates) the well database at path.
// The caller must blank-import an SQLite driver:
//
//	import _ "modernc.org/sqlite"
func Open(path string, opts ...Option) (*Store, error) {
	cfg := config{busyTimeout: 10_000, logger: slog.Default()}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.mkdirAll && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("wellstore: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("wellstore: open: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.busyTimeout),
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("wellstore: %s: %w", p, err)
		}
	}

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("wellstore: schema: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("wellstore: ping: %w", err)
	}

	return &Store{db: db, logger: cfg.logger}, nil
}

// OpenMemory opens an in-memory store for testing. MaxOpenConns(1) keeps
// every query on the same connection; each connection to ":memory:" would
// otherwise see its own empty database.
func OpenMemory(t testing.TB, opts ...Option) *Store {
	t.Helper()
	s, err := Open(":memory:", opts...)
	if err != nil {
		t.Fatalf("wellstore.OpenMemory: %v", err)
	}
	s.db.SetMaxOpenConns(1)
	t.Cleanup(func() { s.Close() })
	return s
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
