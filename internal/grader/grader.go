// Package grader decides whether a submitted answer counts as correct for a
// question. Grading is a pure function: no state, no side effects, and the
// question is never mutated.
package grader

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/studychamp/studychamp/internal/bank"
)

// numericTolerance is the maximum absolute difference under which two
// numeric tokens are considered equal. A difference of exactly 0.01 is
// a wrong answer.
const numericTolerance = 0.01

// keywordThreshold is the fraction of key words that must match for a
// free-text answer to grade correct. Applied with a ceiling, so 5 key
// words require 3 matches.
const keywordThreshold = 0.6

// minKeywordLen is the minimum length (exclusive) for a word of the
// reference answer to count as a key word.
const minKeywordLen = 3

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// ErrUnknownQuestionType reports a question type the grader does not
// recognize. It is surfaced distinctly so callers never confuse it with a
// genuinely wrong answer.
type ErrUnknownQuestionType struct {
	Type bank.QuestionType
}

func (e *ErrUnknownQuestionType) Error() string {
	return fmt.Sprintf("unknown question type: %q", e.Type)
}

// Grade reports whether submitted is a correct answer to q.
//
// Both the canonical answer and the submission are normalized (lowercased,
// trimmed) before comparison. The rule per question type:
//   - multiple-choice: normalized strings must be exactly equal.
//   - numerical: the decimal tokens of both strings must pair up in order,
//     each pair differing by less than 0.01. No tokens on either side is
//     vacuously correct.
//   - short/long answer: at least 60% (ceiling) of the reference answer's
//     key words must appear in the submission, where containment in either
//     direction counts so partial stems match.
func Grade(q bank.Question, submitted string) (bool, error) {
	correct := normalize(q.CorrectAnswer)
	answer := normalize(submitted)

	switch q.Type {
	case bank.TypeMultipleChoice:
		return correct == answer, nil
	case bank.TypeNumerical:
		return gradeNumerical(correct, answer), nil
	case bank.TypeShortAnswer, bank.TypeLongAnswer:
		return gradeKeywords(correct, answer), nil
	default:
		return false, &ErrUnknownQuestionType{Type: q.Type}
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// gradeNumerical compares the decimal tokens of both strings pairwise.
func gradeNumerical(correct, answer string) bool {
	correctNums := numberPattern.FindAllString(correct, -1)
	answerNums := numberPattern.FindAllString(answer, -1)

	if len(correctNums) != len(answerNums) {
		return false
	}
	for i, tok := range correctNums {
		want, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return false
		}
		got, err := strconv.ParseFloat(answerNums[i], 64)
		if err != nil {
			return false
		}
		// Raw subtraction of decimal literals carries float64 noise
		// (42 - 41.99 is 0.00999...97), which would sneak an exact
		// 0.01 miss under the tolerance. Round it off first.
		diff := math.Round(math.Abs(want-got)*1e9) / 1e9
		if diff >= numericTolerance {
			return false
		}
	}
	// Zero tokens on both sides falls through as vacuously correct.
	return true
}

// gradeKeywords applies the 60% key-word overlap heuristic. The threshold
// is preserved exactly as the product defined it; no smarter matching.
func gradeKeywords(correct, answer string) bool {
	var keywords []string
	for _, w := range strings.Fields(correct) {
		if len(w) > minKeywordLen {
			keywords = append(keywords, w)
		}
	}
	if len(keywords) == 0 {
		return true
	}

	answerWords := strings.Fields(answer)
	matched := 0
	for _, kw := range keywords {
		for _, aw := range answerWords {
			if strings.Contains(aw, kw) || strings.Contains(kw, aw) {
				matched++
				break
			}
		}
	}

	required := int(math.Ceil(float64(len(keywords)) * keywordThreshold))
	return matched >= required
}
