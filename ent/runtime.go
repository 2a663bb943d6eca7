// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/studychamp/studychamp/ent/answerevent"
	"github.com/studychamp/studychamp/ent/flashcard"
	"github.com/studychamp/studychamp/ent/llmrequestevent"
	"github.com/studychamp/studychamp/ent/plannertask"
	"github.com/studychamp/studychamp/ent/quizattemptevent"
	"github.com/studychamp/studychamp/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[0].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[2].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[3].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescSubject is the schema descriptor for subject field.
	answereventDescSubject := answereventFields[4].Descriptor()
	// answerevent.DefaultSubject holds the default value on creation for the subject field.
	answerevent.DefaultSubject = answereventDescSubject.Default.(string)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[5].Descriptor()
	// answerevent.DefaultTopic holds the default value on creation for the topic field.
	answerevent.DefaultTopic = answereventDescTopic.Default.(string)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[6].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	flashcardFields := schema.Flashcard{}.Fields()
	_ = flashcardFields
	// flashcardDescCardID is the schema descriptor for card_id field.
	flashcardDescCardID := flashcardFields[0].Descriptor()
	// flashcard.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	flashcard.CardIDValidator = flashcardDescCardID.Validators[0].(func(string) error)
	// flashcardDescTopic is the schema descriptor for topic field.
	flashcardDescTopic := flashcardFields[1].Descriptor()
	// flashcard.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	flashcard.TopicValidator = flashcardDescTopic.Validators[0].(func(string) error)
	// flashcardDescQuestion is the schema descriptor for question field.
	flashcardDescQuestion := flashcardFields[2].Descriptor()
	// flashcard.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	flashcard.QuestionValidator = flashcardDescQuestion.Validators[0].(func(string) error)
	// flashcardDescAnswer is the schema descriptor for answer field.
	flashcardDescAnswer := flashcardFields[3].Descriptor()
	// flashcard.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	flashcard.AnswerValidator = flashcardDescAnswer.Validators[0].(func(string) error)
	// flashcardDescStatus is the schema descriptor for status field.
	flashcardDescStatus := flashcardFields[4].Descriptor()
	// flashcard.DefaultStatus holds the default value on creation for the status field.
	flashcard.DefaultStatus = flashcardDescStatus.Default.(string)
	// flashcardDescCreatedAt is the schema descriptor for created_at field.
	flashcardDescCreatedAt := flashcardFields[5].Descriptor()
	// flashcard.DefaultCreatedAt holds the default value on creation for the created_at field.
	flashcard.DefaultCreatedAt = flashcardDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	plannertaskFields := schema.PlannerTask{}.Fields()
	_ = plannertaskFields
	// plannertaskDescTaskID is the schema descriptor for task_id field.
	plannertaskDescTaskID := plannertaskFields[0].Descriptor()
	// plannertask.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	plannertask.TaskIDValidator = plannertaskDescTaskID.Validators[0].(func(string) error)
	// plannertaskDescTitle is the schema descriptor for title field.
	plannertaskDescTitle := plannertaskFields[1].Descriptor()
	// plannertask.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	plannertask.TitleValidator = plannertaskDescTitle.Validators[0].(func(string) error)
	// plannertaskDescCompleted is the schema descriptor for completed field.
	plannertaskDescCompleted := plannertaskFields[3].Descriptor()
	// plannertask.DefaultCompleted holds the default value on creation for the completed field.
	plannertask.DefaultCompleted = plannertaskDescCompleted.Default.(bool)
	// plannertaskDescCreatedAt is the schema descriptor for created_at field.
	plannertaskDescCreatedAt := plannertaskFields[4].Descriptor()
	// plannertask.DefaultCreatedAt holds the default value on creation for the created_at field.
	plannertask.DefaultCreatedAt = plannertaskDescCreatedAt.Default.(func() time.Time)
	quizattempteventMixin := schema.QuizAttemptEvent{}.Mixin()
	quizattempteventMixinFields0 := quizattempteventMixin[0].Fields()
	_ = quizattempteventMixinFields0
	quizattempteventFields := schema.QuizAttemptEvent{}.Fields()
	_ = quizattempteventFields
	// quizattempteventDescTimestamp is the schema descriptor for timestamp field.
	quizattempteventDescTimestamp := quizattempteventMixinFields0[1].Descriptor()
	// quizattemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizattemptevent.DefaultTimestamp = quizattempteventDescTimestamp.Default.(func() time.Time)
	// quizattempteventDescAttemptID is the schema descriptor for attempt_id field.
	quizattempteventDescAttemptID := quizattempteventFields[0].Descriptor()
	// quizattemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	quizattemptevent.AttemptIDValidator = quizattempteventDescAttemptID.Validators[0].(func(string) error)
	// quizattempteventDescTopic is the schema descriptor for topic field.
	quizattempteventDescTopic := quizattempteventFields[1].Descriptor()
	// quizattemptevent.DefaultTopic holds the default value on creation for the topic field.
	quizattemptevent.DefaultTopic = quizattempteventDescTopic.Default.(string)
	// quizattempteventDescDifficulty is the schema descriptor for difficulty field.
	quizattempteventDescDifficulty := quizattempteventFields[2].Descriptor()
	// quizattemptevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	quizattemptevent.DefaultDifficulty = quizattempteventDescDifficulty.Default.(string)
}
