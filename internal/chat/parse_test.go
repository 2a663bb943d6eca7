package chat

import (
	"slices"
	"strings"
	"testing"
)

func TestExtractSuggestions(t *testing.T) {
	content := "You should study linear equations first. Then practice factoring polynomials. Topics: quadratic formula and discriminants."

	got := extractSuggestions(content)
	if len(got) != 3 {
		t.Fatalf("got %d suggestions %v, want 3", len(got), got)
	}
	if !strings.Contains(got[0], "linear equations") {
		t.Errorf("first suggestion %q missing topic", got[0])
	}
	if got[2] != "quadratic formula and discriminants" {
		t.Errorf("colon-prefixed suggestion = %q, want prefix stripped", got[2])
	}
}

func TestExtractSuggestionsLengthFilter(t *testing.T) {
	// Too short after cleaning, and one far over the limit.
	long := "study " + strings.Repeat("x", 120)
	content := "Topics: ab. " + long

	if got := extractSuggestions(content); len(got) != 0 {
		t.Errorf("got %v, want no suggestions", got)
	}
}

func TestExtractSuggestionsCap(t *testing.T) {
	content := "Practice derivatives today. Review integration rules. Explore infinite series. Learn partial fractions."

	got := extractSuggestions(content)
	if len(got) != maxSuggestions {
		t.Errorf("got %d suggestions, want capped at %d", len(got), maxSuggestions)
	}
}

func TestExtractTopics(t *testing.T) {
	content := "Topic: cellular respiration. Concept: electron transport chain. You could learn about glycolysis too."

	got := extractTopics(content)
	if !slices.Contains(got, "cellular respiration") {
		t.Errorf("topics %v missing cellular respiration", got)
	}
	if !slices.Contains(got, "electron transport chain") {
		t.Errorf("topics %v missing electron transport chain", got)
	}
}

func TestAssessDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Difficulty
	}{
		{"advanced keyword", "This theorem requires a rigorous proof.", DifficultyAdvanced},
		{"beginner keyword", "Here is a simple introduction to fractions.", DifficultyBeginner},
		{"advanced wins over beginner", "A basic introduction to quantum mechanics.", DifficultyAdvanced},
		{"neither", "Photosynthesis converts light into energy.", DifficultyIntermediate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assessDifficulty(tt.content); got != tt.want {
				t.Errorf("assessDifficulty = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEstimateStudyTime(t *testing.T) {
	tests := []struct {
		words int
		want  string
	}{
		{10, "15-30 minutes"},
		{49, "15-30 minutes"},
		{50, "30-60 minutes"},
		{149, "30-60 minutes"},
		{150, "1-2 hours"},
		{299, "1-2 hours"},
		{300, "2-3 hours"},
		{1000, "2-3 hours"},
	}

	for _, tt := range tests {
		content := strings.TrimSpace(strings.Repeat("word ", tt.words))
		if got := estimateStudyTime(content); got != tt.want {
			t.Errorf("estimateStudyTime(%d words) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestParseReplyKeepsContent(t *testing.T) {
	content := "Study thermodynamics. It is a complex subject."

	reply := parseReply(content)
	if reply.Content != content {
		t.Errorf("Content = %q, want original text", reply.Content)
	}
	if reply.Materials.Difficulty != DifficultyAdvanced {
		t.Errorf("Difficulty = %q, want advanced", reply.Materials.Difficulty)
	}
	if reply.Materials.EstimatedTime != "15-30 minutes" {
		t.Errorf("EstimatedTime = %q", reply.Materials.EstimatedTime)
	}
}
