// Package notes generates structured study notes with the model and keeps
// a library of rendered Markdown files on disk.
package notes

import (
	"fmt"
	"strings"
	"time"
)

// Section is one titled block of a study note.
type Section struct {
	Heading string
	Content string
}

// Note is a structured study note for a topic.
type Note struct {
	ID        string
	Topic     string
	Title     string
	Sections  []Section
	Summary   string
	CreatedAt time.Time
}

// Markdown renders the note as a Markdown document.
func (n Note) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", n.Title)
	fmt.Fprintf(&b, "*Topic: %s*\n\n", n.Topic)

	for _, s := range n.Sections {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", s.Heading, s.Content)
	}

	if n.Summary != "" {
		fmt.Fprintf(&b, "## Summary\n\n%s\n", n.Summary)
	}

	return b.String()
}

// slug converts a topic into a filesystem-friendly name.
func slug(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
