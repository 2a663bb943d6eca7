package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Flashcard is a stored flashcard. Unlike events, cards are mutable:
// their status changes as the student reviews them.
type Flashcard struct {
	ent.Schema
}

func (Flashcard) Fields() []ent.Field {
	return []ent.Field{
		field.String("card_id").
			Unique().
			NotEmpty().
			Comment("Stable card identifier"),
		field.String("topic").
			NotEmpty(),
		field.String("question").
			NotEmpty(),
		field.String("answer").
			NotEmpty(),
		field.String("status").
			Default("new").
			Comment("new, learning, or mastered"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Flashcard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("status"),
	}
}
