package grader

import (
	"errors"
	"testing"

	"github.com/studychamp/studychamp/internal/bank"
)

func mcq(answer string) bank.Question {
	return bank.Question{
		ID:            "q",
		Type:          bank.TypeMultipleChoice,
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: answer,
		Points:        5,
	}
}

func numerical(answer string) bank.Question {
	return bank.Question{ID: "q", Type: bank.TypeNumerical, CorrectAnswer: answer, Points: 10}
}

func shortAnswer(answer string) bank.Question {
	return bank.Question{ID: "q", Type: bank.TypeShortAnswer, CorrectAnswer: answer, Points: 8}
}

func mustGrade(t *testing.T, q bank.Question, submitted string) bool {
	t.Helper()
	ok, err := Grade(q, submitted)
	if err != nil {
		t.Fatalf("Grade(%q) returned error: %v", submitted, err)
	}
	return ok
}

func TestMultipleChoiceCaseAndWhitespace(t *testing.T) {
	tests := []struct {
		submitted string
		want      bool
	}{
		{"B", true},
		{"b", true},
		{"  B  ", true},
		{"\tb\n", true},
		{"A", false},
		{"", false},
		{"BB", false},
	}

	q := mcq("B")
	for _, tt := range tests {
		if got := mustGrade(t, q, tt.submitted); got != tt.want {
			t.Errorf("Grade(%q) = %t, want %t", tt.submitted, got, tt.want)
		}
	}
}

func TestNumericalTolerance(t *testing.T) {
	tests := []struct {
		correct   string
		submitted string
		want      bool
	}{
		{"42", "42", true},
		{"42", "42.005", true},
		{"42", "42.0099", true},
		// A difference of exactly 0.01 is not strictly less than the
		// tolerance, so it grades wrong.
		{"42", "41.99", false},
		{"42", "42.01", false},
		{"42", "43", false},
		// Boundary misses between decimal tokens, where float64
		// subtraction lands a hair on either side of 0.01.
		{"3.14", "3.13", false},
		{"0.3", "0.29", false},
		{"3.14", "3.1301", true},
		// Multiple tokens pair up in order.
		{"x = 2, 3", "2 and 3", true},
		{"x = 2, 3", "3 and 2", false},
		{"x = 2, 3", "2", false},
		// Token counts must agree.
		{"42", "42 and 7", false},
		// Extra words around the number are fine.
		{"20", "the answer is 20 meters", true},
	}

	for _, tt := range tests {
		if got := mustGrade(t, numerical(tt.correct), tt.submitted); got != tt.want {
			t.Errorf("Grade(correct=%q, %q) = %t, want %t", tt.correct, tt.submitted, got, tt.want)
		}
	}
}

func TestNumericalNoTokensOnBothSides(t *testing.T) {
	// Documented edge case: no extractable numbers anywhere grades correct.
	if !mustGrade(t, numerical("no numbers here"), "also none") {
		t.Error("zero tokens on both sides should be vacuously correct")
	}
	if mustGrade(t, numerical("42"), "no numbers") {
		t.Error("token count mismatch should grade wrong")
	}
}

func TestKeywordMatching(t *testing.T) {
	q := shortAnswer("Photosynthesis converts light energy into glucose and oxygen")
	// Key words (len > 3): photosynthesis, converts, light, energy, into,
	// glucose, oxygen -> 7 keys, ceil(0.6*7) = 5 required.

	tests := []struct {
		submitted string
		want      bool
	}{
		{"photosynthesis converts light energy into glucose", true},
		{"photosynthesis converts light energy glucose oxygen", true},
		// Partial stems count through bidirectional containment.
		{"photo converts light energy gluco", true},
		{"plants are green", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := mustGrade(t, q, tt.submitted); got != tt.want {
			t.Errorf("Grade(%q) = %t, want %t", tt.submitted, got, tt.want)
		}
	}
}

func TestKeywordZeroKeywordsIsCorrect(t *testing.T) {
	// Documented edge case: a reference answer with no word longer than
	// three characters grades any submission correct.
	q := shortAnswer("a an the of")
	if !mustGrade(t, q, "anything at all") {
		t.Error("zero key words should grade correct")
	}
	if !mustGrade(t, q, "") {
		t.Error("zero key words should grade correct even for empty input")
	}
}

func TestLongAnswerUsesKeywordRule(t *testing.T) {
	q := bank.Question{
		ID:            "q",
		Type:          bank.TypeLongAnswer,
		CorrectAnswer: "inertia force acceleration reaction",
		Points:        15,
	}
	if !mustGrade(t, q, "inertia force acceleration") {
		t.Error("3 of 4 key words should clear the 60% threshold")
	}
	if mustGrade(t, q, "inertia") {
		t.Error("1 of 4 key words should not clear the threshold")
	}
}

func TestUnknownTypeIsDistinctError(t *testing.T) {
	q := bank.Question{ID: "q", Type: "essay", CorrectAnswer: "x"}

	ok, err := Grade(q, "x")
	if ok {
		t.Error("unknown type must not grade correct")
	}
	var unknownErr *ErrUnknownQuestionType
	if !errors.As(err, &unknownErr) {
		t.Fatalf("want ErrUnknownQuestionType, got %v", err)
	}
	if unknownErr.Type != "essay" {
		t.Errorf("error carries type %q, want %q", unknownErr.Type, "essay")
	}
}

func TestGradeNeverMutatesQuestion(t *testing.T) {
	q := mcq("B")
	mustGrade(t, q, "b")
	if q.CorrectAnswer != "B" || q.Points != 5 {
		t.Error("grading mutated the question")
	}
}
