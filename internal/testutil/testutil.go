// Package testutil provides shared test helpers for setting up planner stores.
package testutil

import (
	"testing"

	"github.com/starford/dagaz/internal/blob"
	"github.com/starford/dagaz/internal/planner"
)

// TestStore creates a planner store over an in-memory blob store.
func TestStore(t *testing.T) *planner.Store {
	t.Helper()
	return planner.NewStore(blob.NewMemory())
}

// TestFileStore creates a planner store over a temp-dir file blob store
// and returns the data directory alongside it.
func TestFileStore(t *testing.T) (string, *planner.Store) {
	t.Helper()
	dir := t.TempDir()
	bs, err := blob.NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return dir, planner.NewStore(bs)
}
