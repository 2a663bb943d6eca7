package bank

import (
	"math/rand/v2"
	"testing"
)

func TestShuffleKeepsAllElements(t *testing.T) {
	qs := testQuestions()
	shuffled := Shuffle(qs, testRand())

	if len(shuffled) != len(qs) {
		t.Fatalf("shuffled length = %d, want %d", len(shuffled), len(qs))
	}
	set := ids(shuffled)
	for _, q := range qs {
		if !set[q.ID] {
			t.Errorf("question %s missing after shuffle", q.ID)
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	qs := testQuestions()
	before := make([]string, len(qs))
	for i, q := range qs {
		before[i] = q.ID
	}

	Shuffle(qs, testRand())

	for i, q := range qs {
		if q.ID != before[i] {
			t.Fatalf("input slice mutated at index %d", i)
		}
	}
}

func TestShuffleDeterministicWithFixedSeed(t *testing.T) {
	a := Shuffle(testQuestions(), rand.New(rand.NewPCG(7, 7)))
	b := Shuffle(testQuestions(), rand.New(rand.NewPCG(7, 7)))

	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed produced different orders at index %d", i)
		}
	}
}

func TestShuffleNilRand(t *testing.T) {
	shuffled := Shuffle(testQuestions(), nil)
	if len(shuffled) != 5 {
		t.Fatalf("shuffled length = %d, want 5", len(shuffled))
	}
}

func TestShuffleEmpty(t *testing.T) {
	if got := Shuffle(nil, testRand()); len(got) != 0 {
		t.Errorf("Shuffle(nil) = %v, want empty", got)
	}
}
