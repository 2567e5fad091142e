package cache

import (
	"errors"
	"path/filepath"
	"testing"
)

type entry struct {
	Name    string    `json:"name"`
	Heights []float32 `json:"heights"`
}

type params struct {
	Seed    int64 `yaml:"seed"`
	Octaves int   `yaml:"octaves"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoad(t *testing.T) {
	s := openTestStore(t)

	in := entry{Name: "island", Heights: []float32{-3.5, 0, 2.25}}
	if err := s.Save("k1", in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var out entry
	if err := s.Load("k1", &out); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.Name != in.Name || len(out.Heights) != len(in.Heights) {
		t.Fatalf("loaded %+v, want %+v", out, in)
	}
	for i := range in.Heights {
		if out.Heights[i] != in.Heights[i] {
			t.Errorf("height %d = %g, want %g", i, out.Heights[i], in.Heights[i])
		}
	}

	meta, err := s.Metadata("k1")
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if meta.Key != "k1" {
		t.Errorf("metadata key = %s, want k1", meta.Key)
	}
	if meta.RawSize == 0 || meta.StoredSize == 0 {
		t.Errorf("expected non-zero sizes, got %+v", meta)
	}
	if meta.Created.IsZero() {
		t.Error("expected creation time to be set")
	}
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)

	var out entry
	if err := s.Load("nope", &out); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Metadata("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound from Metadata, got %v", err)
	}
}

func TestDeleteAndKeys(t *testing.T) {
	s := openTestStore(t)

	for _, k := range []string{"b", "a", "c"} {
		if err := s.Save(k, entry{Name: k}); err != nil {
			t.Fatalf("Save(%s) failed: %v", k, err)
		}
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Keys() = %v, want [a b c]", keys)
	}

	if err := s.Delete("b"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete("missing"); err != nil {
		t.Errorf("Delete of missing key should succeed, got %v", err)
	}

	var out entry
	if err := s.Load("b", &out); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	keys, _ = s.Keys()
	if len(keys) != 2 {
		t.Errorf("expected 2 keys after delete, got %v", keys)
	}
}

func TestReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.Save("k", entry{Name: "kept"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	var out entry
	if err := s.Load("k", &out); err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if out.Name != "kept" {
		t.Errorf("loaded name %q, want kept", out.Name)
	}
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(params{Seed: 1, Octaves: 4}, "perlin")
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	b, _ := Fingerprint(params{Seed: 1, Octaves: 4}, "perlin")
	c, _ := Fingerprint(params{Seed: 2, Octaves: 4}, "perlin")
	d, _ := Fingerprint(params{Seed: 1, Octaves: 4}, "simplex")

	if a != b {
		t.Error("equal params produced different fingerprints")
	}
	if a == c || a == d {
		t.Error("different params produced equal fingerprints")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
