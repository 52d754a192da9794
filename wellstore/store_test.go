package wellstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/wellpipe/wellstore"
)

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "wells.db")

	store, err := wellstore.Open(path, wellstore.WithMkdirAll())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if err := store.UpsertWell(context.Background(), sampleWell("1")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file: %v", err)
	}
}

func TestOpenWithoutMkdirFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "wells.db")
	if _, err := wellstore.Open(path); err == nil {
		t.Fatal("expected error opening under a missing directory")
	}
}
