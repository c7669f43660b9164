package localstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type noteRecord struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "store.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	want := []noteRecord{{ID: "n1", Text: "hola"}, {ID: "n2", Text: "adios"}}
	if err := store.Save("ligasmart_notes", want); err != nil {
		t.Fatalf("save collection: %v", err)
	}

	// A fresh open must read back what was flushed.
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	var got []noteRecord
	ok, err := reopened.Load("ligasmart_notes", &got)
	if err != nil {
		t.Fatalf("load collection: %v", err)
	}
	if !ok {
		t.Fatal("expected the collection to exist after reopen")
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestStore_OpenMissingFile(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if keys := store.Keys(); len(keys) != 0 {
		t.Fatalf("expected an empty store, got keys %v", keys)
	}

	var out []noteRecord
	ok, err := store.Load("ligasmart_notes", &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for a never-written key")
	}
}

func TestStore_OpenRejectsUnknownVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "store.json")
	raw := `{"ligasmart_teams":{"version":2,"updatedAt":"2026-01-01T00:00:00Z","items":[]}}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write store file: %v", err)
	}

	if _, err := Open(path); !errors.Is(err, ErrBadVersion) {
		t.Fatalf("got %v, want ErrBadVersion", err)
	}
}

func TestStore_Drop(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	if err := store.Save("ligasmart_notes", []noteRecord{{ID: "n1"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Drop("ligasmart_notes"); err != nil {
		t.Fatalf("drop: %v", err)
	}

	var out []noteRecord
	ok, err := store.Load("ligasmart_notes", &out)
	if err != nil {
		t.Fatalf("load after drop: %v", err)
	}
	if ok {
		t.Fatal("expected the collection to be gone")
	}

	// Dropping again is a no-op.
	if err := store.Drop("ligasmart_notes"); err != nil {
		t.Fatalf("second drop: %v", err)
	}
}
