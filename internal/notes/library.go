package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Entry describes a saved note file in the library.
type Entry struct {
	Name    string
	Path    string
	ModTime time.Time
}

// Library stores rendered notes as Markdown files in a directory.
type Library struct {
	dir string
}

// NewLibrary creates a Library rooted at dir, creating it if needed.
func NewLibrary(dir string) (*Library, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating notes directory: %w", err)
	}
	return &Library{dir: dir}, nil
}

// Save renders the note to Markdown and writes it into the library.
// Returns the path of the written file.
func (l *Library) Save(note Note) (string, error) {
	name := slug(note.Topic)
	if name == "" {
		name = "note"
	}
	name = fmt.Sprintf("%s-%s.md", name, note.CreatedAt.Format("2006-01-02"))

	path := filepath.Join(l.dir, name)
	if err := os.WriteFile(path, []byte(note.Markdown()), 0o644); err != nil {
		return "", fmt.Errorf("writing note: %w", err)
	}
	return path, nil
}

// List returns the saved notes, newest first.
func (l *Library) List() ([]Entry, error) {
	dirents, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("reading notes directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirents {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".md") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:    de.Name(),
			Path:    filepath.Join(l.dir, de.Name()),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ModTime.After(entries[j].ModTime)
	})
	return entries, nil
}

// Delete removes a saved note by file name.
func (l *Library) Delete(name string) error {
	if filepath.Base(name) != name {
		return fmt.Errorf("invalid note name %q", name)
	}
	if err := os.Remove(filepath.Join(l.dir, name)); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}
