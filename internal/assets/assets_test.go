package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSearchesRootsInReverseOrder(t *testing.T) {
	low := t.TempDir()
	high := t.TempDir()
	writeFile(t, low, "tex.png", "low")
	writeFile(t, high, "tex.png", "high")

	s := NewSource()
	if err := s.AddRoot(low); err != nil {
		t.Fatal(err)
	}
	if err := s.AddRoot(high); err != nil {
		t.Fatal(err)
	}

	data, err := s.Load("tex.png")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "high" {
		t.Errorf("loaded %q, want the last-added root to win", data)
	}
}

func TestLoadCaches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bin", "payload")

	s := NewSource()
	if err := s.AddRoot(dir); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Load("a.bin"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load("a.bin"); err != nil {
		t.Fatal(err)
	}

	hits, _ := s.cache.Stats()
	if hits != 1 {
		t.Errorf("cache hits = %d, want 1", hits)
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewSource()
	if _, err := s.Load("nope.bin"); err == nil {
		t.Error("expected error for missing asset")
	}
}

func TestAddRootRejectsFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "f", "x")

	s := NewSource()
	if err := s.AddRoot(filepath.Join(dir, "f")); err == nil {
		t.Error("expected error adding a file as root")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "m.glb", "mesh")

	s := NewSource()
	if err := s.AddRoot(dir); err != nil {
		t.Fatal(err)
	}

	path, err := s.Resolve("m.glb")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "m.glb") {
		t.Errorf("resolved %q", path)
	}
}
