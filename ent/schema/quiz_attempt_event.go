package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttemptEvent records one completed quiz session.
type QuizAttemptEvent struct {
	ent.Schema
}

func (QuizAttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			NotEmpty().
			Comment("Session UUID, links AnswerEvents to this attempt"),
		field.String("topic").
			Default("").
			Comment("Topic the quiz was requested for"),
		field.String("difficulty").
			Default("").
			Comment("Requested difficulty, empty if mixed"),
		field.Int("score").
			Comment("Points earned"),
		field.Int("total_points").
			Comment("Points available"),
		field.Int("correct_count").
			Comment("Questions answered correctly"),
		field.Int("total_questions").
			Comment("Questions in the quiz"),
		field.Float("score_percentage").
			Comment("score / total_points * 100, 0 when no points available"),
		field.Float("time_minutes").
			Comment("Minutes from start to finish"),
		field.Time("started_at"),
		field.Time("finished_at"),
	}
}

func (QuizAttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("topic"),
	}
}
