package flashcards

import "testing"

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusNew, StatusLearning, StatusMastered} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []Status{"", "done", "NEW"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestSeedDeck(t *testing.T) {
	cards := Seed()
	if len(cards) != 5 {
		t.Fatalf("seed deck has %d cards, want 5", len(cards))
	}
	for _, c := range cards {
		if !c.Status.Valid() {
			t.Errorf("card %s has invalid status %q", c.ID, c.Status)
		}
		if c.Question == "" || c.Answer == "" {
			t.Errorf("card %s has blank sides", c.ID)
		}
	}
}

func TestFilterByTopic(t *testing.T) {
	cards := Seed()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"topic name", "physics", 3},
		{"case insensitive", "PHYSICS", 3},
		{"matches question text", "derivative", 1},
		{"matches answer text", "photosynthesis", 1},
		{"no match", "astronomy", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByTopic(cards, tt.query)
			if len(got) != tt.want {
				t.Errorf("FilterByTopic(%q) returned %d cards, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}
