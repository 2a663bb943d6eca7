package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer within a quiz attempt.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Links to QuizAttemptEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Bank ID of the question"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("question_type").
			NotEmpty().
			Comment("multiple-choice, short-answer, long-answer, or numerical"),
		field.String("subject").
			Default("").
			Comment("Subject the question belongs to"),
		field.String("topic").
			Default("").
			Comment("Topic the question belongs to"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.String("submitted_answer").
			Comment("What the student entered"),
		field.Bool("correct").
			Comment("Whether the answer was graded correct"),
		field.Int("points").
			Comment("Points this question was worth"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("subject"),
		index.Fields("correct"),
	}
}
