package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLLMRequestEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"chat", "question-gen", "chat"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.0-flash",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			LatencyMs:    int64(50 * (i + 1)),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.RecentLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].Purpose != "chat" || records[0].InputTokens != 102 {
		t.Errorf("newest record = %+v", records[0])
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("records not ordered by sequence: %d then %d", records[0].Sequence, records[1].Sequence)
	}
}

func TestSaveAndQueryAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	attempt := AttemptRecord{
		AttemptID:       "attempt-1",
		Topic:           "algebra",
		Difficulty:      "easy",
		Score:           15,
		TotalPoints:     20,
		CorrectCount:    2,
		TotalQuestions:  3,
		ScorePercentage: 75,
		TimeMinutes:     4.5,
		StartedAt:       now.Add(-5 * time.Minute),
		FinishedAt:      now,
	}
	answers := []AnswerRecord{
		{AttemptID: "attempt-1", QuestionID: "q1", QuestionText: "2+2?", QuestionType: "numerical", Subject: "Mathematics", Topic: "arithmetic", CorrectAnswer: "4", SubmittedAnswer: "4", Correct: true, Points: 5},
		{AttemptID: "attempt-1", QuestionID: "q2", QuestionText: "Capital?", QuestionType: "multiple-choice", Subject: "Geography", Topic: "europe", CorrectAnswer: "Paris", SubmittedAnswer: "London", Correct: false, Points: 5},
		{AttemptID: "attempt-1", QuestionID: "q3", QuestionText: "3*3?", QuestionType: "numerical", Subject: "Mathematics", Topic: "arithmetic", CorrectAnswer: "9", SubmittedAnswer: "9", Correct: true, Points: 10},
	}

	if err := repo.SaveAttempt(ctx, attempt, answers); err != nil {
		t.Fatalf("save attempt: %v", err)
	}

	recent, err := repo.RecentAttempts(ctx, 10)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("got %d attempts, want 1", len(recent))
	}
	got := recent[0]
	if got.AttemptID != "attempt-1" || got.Score != 15 || got.ScorePercentage != 75 {
		t.Errorf("attempt = %+v", got)
	}
	if !got.FinishedAt.Equal(now) {
		t.Errorf("FinishedAt = %v, want %v", got.FinishedAt, now)
	}

	stats, err := repo.SubjectStats(ctx)
	if err != nil {
		t.Fatalf("subject stats: %v", err)
	}
	if s := stats["Mathematics"]; s.Correct != 2 || s.Total != 2 {
		t.Errorf("Mathematics = %+v", s)
	}
	if s := stats["Geography"]; s.Correct != 0 || s.Total != 1 {
		t.Errorf("Geography = %+v", s)
	}
}

func TestCardRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	cards := []CardRecord{
		{ID: "c1", Topic: "Physics", Question: "F = ?", Answer: "ma", Status: "new"},
		{ID: "c2", Topic: "Biology", Question: "Powerhouse?", Answer: "Mitochondria", Status: "learning"},
	}
	if err := repo.SaveCards(ctx, cards); err != nil {
		t.Fatalf("save cards: %v", err)
	}

	// Saving again with the same IDs is a no-op, not an error.
	if err := repo.SaveCards(ctx, cards[:1]); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	listed, err := repo.ListCards(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("got %d cards, want 2", len(listed))
	}

	if err := repo.UpdateStatus(ctx, "c1", "mastered"); err != nil {
		t.Fatalf("update status: %v", err)
	}
	listed, _ = repo.ListCards(ctx)
	for _, c := range listed {
		if c.ID == "c1" && c.Status != "mastered" {
			t.Errorf("c1 status = %q", c.Status)
		}
	}

	if err := repo.UpdateStatus(ctx, "missing", "new"); err == nil {
		t.Error("want error updating unknown card")
	}

	if err := repo.DeleteCard(ctx, "c2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	listed, _ = repo.ListCards(ctx)
	if len(listed) != 1 {
		t.Errorf("got %d cards after delete, want 1", len(listed))
	}
}

func TestTaskRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.TaskRepo()
	ctx := context.Background()

	due := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
	task := TaskRecord{ID: "t1", Title: "Review notes", DueDate: due}
	if err := repo.SaveTask(ctx, task); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Upsert updates in place.
	task.Completed = true
	if err := repo.SaveTask(ctx, task); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if !tasks[0].Completed {
		t.Error("upsert did not persist completion")
	}
	if !tasks[0].DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", tasks[0].DueDate, due)
	}

	if err := repo.DeleteTask(ctx, "t1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteTask(ctx, "t1"); err == nil {
		t.Error("want error deleting missing task")
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	t.Setenv("STUDYCHAMP_DB", t.TempDir()+"/nested/studychamp.db")

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p == "" {
		t.Fatal("empty path")
	}
}
