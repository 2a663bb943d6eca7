package notes

import (
	"strings"
	"testing"
	"time"
)

func sampleNote() Note {
	return Note{
		ID:    "n1",
		Topic: "Cell Division",
		Title: "Mitosis and Meiosis",
		Sections: []Section{
			{Heading: "Mitosis", Content: "Produces two identical daughter cells."},
			{Heading: "Meiosis", Content: "Produces four haploid cells."},
		},
		Summary:   "Mitosis copies, meiosis halves.",
		CreatedAt: time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestMarkdownRendering(t *testing.T) {
	md := sampleNote().Markdown()

	for _, want := range []string{
		"# Mitosis and Meiosis",
		"*Topic: Cell Division*",
		"## Mitosis",
		"Produces two identical daughter cells.",
		"## Meiosis",
		"## Summary",
		"Mitosis copies, meiosis halves.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownOmitsEmptySummary(t *testing.T) {
	n := sampleNote()
	n.Summary = ""
	if strings.Contains(n.Markdown(), "## Summary") {
		t.Error("markdown should omit empty summary section")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cell Division", "cell-division"},
		{"  Newton's Laws!  ", "newton-s-laws"},
		{"algebra", "algebra"},
		{"C++ & Go", "c-go"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
