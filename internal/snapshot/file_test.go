package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mmeshcher/dashboard-system/internal/store"
)

func TestLoad_NoFile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.json"))

	_, err := repo.Load()
	if !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot", err)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	repo := NewFileRepository(path)

	snap := store.DefaultSnapshot()
	snap.SearchQuery = "round trip"
	snap.Version = 7

	if err := repo.Save(snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.SearchQuery != "round trip" || loaded.Version != 7 {
		t.Fatalf("loaded snapshot differs: query=%q version=%d", loaded.SearchQuery, loaded.Version)
	}
	if loaded.UnreadMessages != snap.UnreadMessages || len(loaded.Messages) != len(snap.Messages) {
		t.Fatalf("messages not restored")
	}
	if !loaded.Revenue.Total.Equal(snap.Revenue.Total) {
		t.Fatalf("revenue total = %s, want %s", loaded.Revenue.Total, snap.Revenue.Total)
	}
	if !reflect.DeepEqual(loaded.SalesData.Weekly, snap.SalesData.Weekly) {
		t.Fatalf("weekly series not restored")
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	repo := NewFileRepository(path)

	first := store.DefaultSnapshot()
	first.SearchQuery = "first"
	if err := repo.Save(first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := store.DefaultSnapshot()
	second.SearchQuery = "second"
	if err := repo.Save(second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.SearchQuery != "second" {
		t.Fatalf("query = %q, want second", loaded.SearchQuery)
	}
}

func TestLoad_NewerSchemaTreatedAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	data := []byte(`{"schema_version": 99}`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	repo := NewFileRepository(path)
	_, err := repo.Load()
	if !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot for newer schema", err)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	repo := NewFileRepository(path)
	if _, err := repo.Load(); err == nil {
		t.Fatalf("expected error for corrupt snapshot")
	}
}
