// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "submitted_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "points", Type: field.TypeInt},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_subject",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[7]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[11]},
			},
		},
	}
	// FlashcardsColumns holds the columns for the "flashcards" table.
	FlashcardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "card_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "new"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FlashcardsTable holds the schema information for the "flashcards" table.
	FlashcardsTable = &schema.Table{
		Name:       "flashcards",
		Columns:    FlashcardsColumns,
		PrimaryKey: []*schema.Column{FlashcardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "flashcard_topic",
				Unique:  false,
				Columns: []*schema.Column{FlashcardsColumns[2]},
			},
			{
				Name:    "flashcard_status",
				Unique:  false,
				Columns: []*schema.Column{FlashcardsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PlannerTasksColumns holds the columns for the "planner_tasks" table.
	PlannerTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PlannerTasksTable holds the schema information for the "planner_tasks" table.
	PlannerTasksTable = &schema.Table{
		Name:       "planner_tasks",
		Columns:    PlannerTasksColumns,
		PrimaryKey: []*schema.Column{PlannerTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plannertask_due_date",
				Unique:  false,
				Columns: []*schema.Column{PlannerTasksColumns[3]},
			},
			{
				Name:    "plannertask_completed",
				Unique:  false,
				Columns: []*schema.Column{PlannerTasksColumns[4]},
			},
		},
	}
	// QuizAttemptEventsColumns holds the columns for the "quiz_attempt_events" table.
	QuizAttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_points", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "score_percentage", Type: field.TypeFloat64},
		{Name: "time_minutes", Type: field.TypeFloat64},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime},
	}
	// QuizAttemptEventsTable holds the schema information for the "quiz_attempt_events" table.
	QuizAttemptEventsTable = &schema.Table{
		Name:       "quiz_attempt_events",
		Columns:    QuizAttemptEventsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptEventsColumns[1]},
			},
			{
				Name:    "quizattemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptEventsColumns[2]},
			},
			{
				Name:    "quizattemptevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptEventsColumns[3]},
			},
			{
				Name:    "quizattemptevent_topic",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		FlashcardsTable,
		LlmRequestEventsTable,
		PlannerTasksTable,
		QuizAttemptEventsTable,
	}
)

func init() {
}
