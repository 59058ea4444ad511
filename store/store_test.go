package store

import (
	"errors"
	"path/filepath"
	"testing"

	"plank/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "designs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	u, err := core.Preset("display")
	if err != nil {
		t.Fatalf("Preset failed: %v", err)
	}

	if err := s.Save("living room", u); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load("living room")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Width != u.Width || got.Material != u.Material {
		t.Errorf("loaded unit differs: %+v", got)
	}
	if len(got.Shelves) != len(u.Shelves) || got.Shelves[0].ID != u.Shelves[0].ID {
		t.Errorf("loaded shelves differ: %+v", got.Shelves)
	}
}

func TestSaveOverwritesByName(t *testing.T) {
	s := openTestStore(t)
	u, _ := core.Preset("basic")

	if err := s.Save("draft", u); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	u.Width = 1.2
	if err := s.Save("draft", u); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := s.Load("draft")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Width != 1.2 {
		t.Errorf("overwrite not applied: width %g", got.Width)
	}

	designs, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(designs) != 1 {
		t.Errorf("expected 1 design after overwrite, got %d", len(designs))
	}
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Load("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	s := openTestStore(t)
	if err := s.Save("bad", &core.Unit{Width: -1}); err == nil {
		t.Error("expected error for invalid unit")
	}
	u, _ := core.Preset("basic")
	if err := s.Save("", u); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTestStore(t)
	u, _ := core.Preset("basic")

	for _, name := range []string{"a", "b", "c"} {
		if err := s.Save(name, u); err != nil {
			t.Fatalf("Save(%s) failed: %v", name, err)
		}
	}

	designs, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(designs) != 3 {
		t.Fatalf("expected 3 designs, got %d", len(designs))
	}

	if err := s.Delete("b"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete("b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}

	designs, _ = s.List()
	if len(designs) != 2 {
		t.Errorf("expected 2 designs after delete, got %d", len(designs))
	}
}
