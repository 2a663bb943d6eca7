package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlannerTask is a stored study task. Tasks are mutable: they can be
// completed, reopened, and rescheduled.
type PlannerTask struct {
	ent.Schema
}

func (PlannerTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Unique().
			NotEmpty().
			Comment("Stable task identifier"),
		field.String("title").
			NotEmpty(),
		field.Time("due_date"),
		field.Bool("completed").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PlannerTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("due_date"),
		index.Fields("completed"),
	}
}
