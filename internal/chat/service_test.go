package chat

import (
	"context"
	"fmt"
	"testing"

	"github.com/studychamp/studychamp/internal/llm"
)

func TestAskRecordsHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: []byte("Newton's laws describe motion.")},
	)
	tutor := NewTutor(mock)

	reply, err := tutor.Ask(context.Background(), "Explain Newton's laws")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply.Content != "Newton's laws describe motion." {
		t.Errorf("Content = %q", reply.Content)
	}

	hist := tutor.History()
	if len(hist) != 2 {
		t.Fatalf("history len = %d, want 2", len(hist))
	}
	if hist[0].Role != llm.RoleUser || hist[1].Role != llm.RoleAssistant {
		t.Errorf("history roles = %v %v", hist[0].Role, hist[1].Role)
	}
}

func TestAskSendsRollingWindow(t *testing.T) {
	mock := llm.NewMockProvider()
	for range 10 {
		mock.AddResponse(llm.MockResponse{Content: []byte("ok")})
	}
	tutor := NewTutor(mock)

	for i := range 5 {
		if _, err := tutor.Ask(context.Background(), fmt.Sprintf("question %d", i)); err != nil {
			t.Fatalf("Ask %d: %v", i, err)
		}
	}

	// Fifth call: history holds 8 prior messages, only the trailing 5 plus
	// the new message go out.
	last := mock.Calls[len(mock.Calls)-1]
	if len(last.Messages) != contextWindow+1 {
		t.Fatalf("sent %d messages, want %d", len(last.Messages), contextWindow+1)
	}
	if last.Messages[len(last.Messages)-1].Content != "question 4" {
		t.Errorf("final message = %q", last.Messages[len(last.Messages)-1].Content)
	}
	if last.System != systemPrompt {
		t.Error("system prompt not sent")
	}
}

func TestAskRejectsEmptyMessage(t *testing.T) {
	tutor := NewTutor(llm.NewMockProvider())
	if _, err := tutor.Ask(context.Background(), "   "); err == nil {
		t.Fatal("want error for blank message")
	}
}

func TestAskErrorLeavesHistoryUntouched(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	tutor := NewTutor(mock)

	if _, err := tutor.Ask(context.Background(), "hello"); err == nil {
		t.Fatal("want error")
	}
	if len(tutor.History()) != 0 {
		t.Errorf("history len = %d, want 0 after failed call", len(tutor.History()))
	}
}

func TestReset(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: []byte("hi")})
	tutor := NewTutor(mock)
	if _, err := tutor.Ask(context.Background(), "hello"); err != nil {
		t.Fatal(err)
	}

	tutor.Reset()
	if len(tutor.History()) != 0 {
		t.Error("history not cleared")
	}
}
