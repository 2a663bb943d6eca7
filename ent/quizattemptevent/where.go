// Code generated by ent, DO NOT EDIT.

package quizattemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/studychamp/studychamp/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldAttemptID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTopic, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldScore, v))
}

// TotalPoints applies equality check predicate on the "total_points" field. It's identical to TotalPointsEQ.
func TotalPoints(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTotalPoints, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTotalQuestions, v))
}

// ScorePercentage applies equality check predicate on the "score_percentage" field. It's identical to ScorePercentageEQ.
func ScorePercentage(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldScorePercentage, v))
}

// TimeMinutes applies equality check predicate on the "time_minutes" field. It's identical to TimeMinutesEQ.
func TimeMinutes(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTimeMinutes, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldFinishedAt, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldContainsFold(FieldTopic, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldScore, v))
}

// TotalPointsEQ applies the EQ predicate on the "total_points" field.
func TotalPointsEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTotalPoints, v))
}

// TotalPointsNEQ applies the NEQ predicate on the "total_points" field.
func TotalPointsNEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldTotalPoints, v))
}

// TotalPointsIn applies the In predicate on the "total_points" field.
func TotalPointsIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldTotalPoints, vs...))
}

// TotalPointsNotIn applies the NotIn predicate on the "total_points" field.
func TotalPointsNotIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldTotalPoints, vs...))
}

// TotalPointsGT applies the GT predicate on the "total_points" field.
func TotalPointsGT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldTotalPoints, v))
}

// TotalPointsGTE applies the GTE predicate on the "total_points" field.
func TotalPointsGTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldTotalPoints, v))
}

// TotalPointsLT applies the LT predicate on the "total_points" field.
func TotalPointsLT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldTotalPoints, v))
}

// TotalPointsLTE applies the LTE predicate on the "total_points" field.
func TotalPointsLTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldTotalPoints, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldCorrectCount, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldTotalQuestions, v))
}

// ScorePercentageEQ applies the EQ predicate on the "score_percentage" field.
func ScorePercentageEQ(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldScorePercentage, v))
}

// ScorePercentageNEQ applies the NEQ predicate on the "score_percentage" field.
func ScorePercentageNEQ(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldScorePercentage, v))
}

// ScorePercentageIn applies the In predicate on the "score_percentage" field.
func ScorePercentageIn(vs ...float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldScorePercentage, vs...))
}

// ScorePercentageNotIn applies the NotIn predicate on the "score_percentage" field.
func ScorePercentageNotIn(vs ...float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldScorePercentage, vs...))
}

// ScorePercentageGT applies the GT predicate on the "score_percentage" field.
func ScorePercentageGT(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldScorePercentage, v))
}

// ScorePercentageGTE applies the GTE predicate on the "score_percentage" field.
func ScorePercentageGTE(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldScorePercentage, v))
}

// ScorePercentageLT applies the LT predicate on the "score_percentage" field.
func ScorePercentageLT(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldScorePercentage, v))
}

// ScorePercentageLTE applies the LTE predicate on the "score_percentage" field.
func ScorePercentageLTE(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldScorePercentage, v))
}

// TimeMinutesEQ applies the EQ predicate on the "time_minutes" field.
func TimeMinutesEQ(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTimeMinutes, v))
}

// TimeMinutesNEQ applies the NEQ predicate on the "time_minutes" field.
func TimeMinutesNEQ(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldTimeMinutes, v))
}

// TimeMinutesIn applies the In predicate on the "time_minutes" field.
func TimeMinutesIn(vs ...float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldTimeMinutes, vs...))
}

// TimeMinutesNotIn applies the NotIn predicate on the "time_minutes" field.
func TimeMinutesNotIn(vs ...float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldTimeMinutes, vs...))
}

// TimeMinutesGT applies the GT predicate on the "time_minutes" field.
func TimeMinutesGT(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldTimeMinutes, v))
}

// TimeMinutesGTE applies the GTE predicate on the "time_minutes" field.
func TimeMinutesGTE(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldTimeMinutes, v))
}

// TimeMinutesLT applies the LT predicate on the "time_minutes" field.
func TimeMinutesLT(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldTimeMinutes, v))
}

// TimeMinutesLTE applies the LTE predicate on the "time_minutes" field.
func TimeMinutesLTE(v float64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldTimeMinutes, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldFinishedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAttemptEvent) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAttemptEvent) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAttemptEvent) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.NotPredicates(p))
}
