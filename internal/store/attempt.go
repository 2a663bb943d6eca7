package store

import (
	"context"
	"fmt"

	"github.com/studychamp/studychamp/ent"
	"github.com/studychamp/studychamp/ent/quizattemptevent"
)

// attemptRepo implements AttemptRepo backed by ent and the global
// sequence counter.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) SaveAttempt(ctx context.Context, attempt AttemptRecord, answers []AnswerRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizAttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(attempt.AttemptID).
		SetTopic(attempt.Topic).
		SetDifficulty(attempt.Difficulty).
		SetScore(attempt.Score).
		SetTotalPoints(attempt.TotalPoints).
		SetCorrectCount(attempt.CorrectCount).
		SetTotalQuestions(attempt.TotalQuestions).
		SetScorePercentage(attempt.ScorePercentage).
		SetTimeMinutes(attempt.TimeMinutes).
		SetStartedAt(attempt.StartedAt).
		SetFinishedAt(attempt.FinishedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}

	for _, a := range answers {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		_, err = r.client.AnswerEvent.Create().
			SetSequence(seqNum).
			SetAttemptID(a.AttemptID).
			SetQuestionID(a.QuestionID).
			SetQuestionText(a.QuestionText).
			SetQuestionType(a.QuestionType).
			SetSubject(a.Subject).
			SetTopic(a.Topic).
			SetCorrectAnswer(a.CorrectAnswer).
			SetSubmittedAnswer(a.SubmittedAnswer).
			SetCorrect(a.Correct).
			SetPoints(a.Points).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save answer event: %w", err)
		}
	}

	return nil
}

func (r *attemptRepo) RecentAttempts(ctx context.Context, limit int) ([]AttemptRecord, error) {
	q := r.client.QuizAttemptEvent.Query().
		Order(ent.Desc(quizattemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	out := make([]AttemptRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, AttemptRecord{
			AttemptID:       row.AttemptID,
			Topic:           row.Topic,
			Difficulty:      row.Difficulty,
			Score:           row.Score,
			TotalPoints:     row.TotalPoints,
			CorrectCount:    row.CorrectCount,
			TotalQuestions:  row.TotalQuestions,
			ScorePercentage: row.ScorePercentage,
			TimeMinutes:     row.TimeMinutes,
			StartedAt:       row.StartedAt,
			FinishedAt:      row.FinishedAt,
		})
	}
	return out, nil
}

func (r *attemptRepo) SubjectStats(ctx context.Context) (map[string]SubjectStat, error) {
	rows, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	stats := make(map[string]SubjectStat)
	for _, row := range rows {
		subject := row.Subject
		if subject == "" {
			subject = "General"
		}
		s := stats[subject]
		s.Total++
		if row.Correct {
			s.Correct++
		}
		stats[subject] = s
	}
	return stats, nil
}
