package quiz

import (
	"sort"

	"github.com/studychamp/studychamp/internal/grader"
)

// CategoryStat is the per-subject correct/total tally.
type CategoryStat struct {
	Correct int
	Total   int
}

// Result is the report derived from a session. It is always computed on
// demand, never stored independently.
type Result struct {
	// CorrectAnswers counts recorded answers that grade correct.
	CorrectAnswers int

	// TotalQuestions is the number of questions in the session.
	TotalQuestions int

	// ScorePercentage is 100 * score / totalPoints, 0 when the session
	// carries no points.
	ScorePercentage float64

	// TimeTakenMinutes is the elapsed time from start to end (or to now
	// for an in-progress session), in minutes. Never negative.
	TimeTakenMinutes float64

	// CategoryBreakdown tallies correct/total per subject over every
	// question in the session, answered or not.
	CategoryBreakdown map[string]CategoryStat
}

// Summarize derives a Result from a session. Calling it on an in-progress
// session yields a partial preview over whatever answers exist so far; the
// computation is identical either way.
func Summarize(s *Session) Result {
	r := Result{
		TotalQuestions:    len(s.Questions),
		CategoryBreakdown: make(map[string]CategoryStat),
	}

	for _, q := range s.Questions {
		stat := r.CategoryBreakdown[q.Subject]
		stat.Total++

		if answer, ok := s.Answers[q.ID]; ok {
			if correct, err := grader.Grade(q, answer); err == nil && correct {
				r.CorrectAnswers++
				stat.Correct++
			}
		}
		r.CategoryBreakdown[q.Subject] = stat
	}

	if s.TotalPoints > 0 {
		r.ScorePercentage = 100 * float64(s.Score) / float64(s.TotalPoints)
	}

	end := s.EndTime
	if end.IsZero() {
		end = s.clock()()
	}
	if elapsed := end.Sub(s.StartTime); elapsed > 0 {
		r.TimeTakenMinutes = elapsed.Minutes()
	}

	return r
}

// Subjects returns the breakdown's subjects in sorted order, for stable
// display.
func (r Result) Subjects() []string {
	out := make([]string, 0, len(r.CategoryBreakdown))
	for s := range r.CategoryBreakdown {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
