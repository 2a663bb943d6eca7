package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLibrarySaveListDelete(t *testing.T) {
	lib, err := NewLibrary(filepath.Join(t.TempDir(), "notes"))
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}

	note := sampleNote()
	path, err := lib.Save(note)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path) != "cell-division-2025-04-02.md" {
		t.Errorf("saved as %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "# Mitosis and Meiosis") {
		t.Error("saved file missing rendered title")
	}

	entries, err := lib.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	if err := lib.Delete(entries[0].Name); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	entries, _ = lib.List()
	if len(entries) != 0 {
		t.Error("note not deleted")
	}
}

func TestLibraryListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	lib, err := NewLibrary(dir)
	if err != nil {
		t.Fatal(err)
	}

	old := filepath.Join(dir, "old.md")
	if err := os.WriteFile(old, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-time.Hour)
	os.Chtimes(old, past, past)

	if err := os.WriteFile(filepath.Join(dir, "new.md"), []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Non-markdown files are ignored.
	os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("z"), 0o644)

	entries, err := lib.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "new.md" {
		t.Errorf("first entry = %q, want new.md", entries[0].Name)
	}
}

func TestLibraryDeleteRejectsPaths(t *testing.T) {
	lib, err := NewLibrary(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := lib.Delete("../escape.md"); err == nil {
		t.Fatal("want error for path traversal")
	}
}
