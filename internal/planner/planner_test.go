package planner

import (
	"errors"
	"testing"
	"time"
)

func fixedTime() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
}

func newTestPlanner() *Planner {
	p := New()
	p.now = fixedTime
	return p
}

func TestAddAndToggle(t *testing.T) {
	p := newTestPlanner()

	task, err := p.Add("Review chemistry notes", fixedTime().Add(24*time.Hour))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if task.ID == "" {
		t.Error("task missing ID")
	}
	if task.Completed {
		t.Error("new task should start incomplete")
	}
	if !task.CreatedAt.Equal(fixedTime()) {
		t.Errorf("CreatedAt = %v", task.CreatedAt)
	}

	toggled, err := p.Toggle(task.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !toggled.Completed {
		t.Error("task should be completed after toggle")
	}

	toggled, err = p.Toggle(task.ID)
	if err != nil {
		t.Fatalf("Toggle back: %v", err)
	}
	if toggled.Completed {
		t.Error("task should be open after second toggle")
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	p := newTestPlanner()
	if _, err := p.Add("   ", fixedTime()); err == nil {
		t.Fatal("want error for blank title")
	}
}

func TestToggleUnknownID(t *testing.T) {
	p := newTestPlanner()
	_, err := p.Toggle("nope")
	var notFound *ErrTaskNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("want ErrTaskNotFound, got %v", err)
	}
}

func TestTasksSortedByDueDate(t *testing.T) {
	p := newTestPlanner()
	base := fixedTime()
	p.Add("later", base.Add(48*time.Hour))
	p.Add("sooner", base.Add(2*time.Hour))
	p.Add("middle", base.Add(24*time.Hour))

	tasks := p.Tasks()
	want := []string{"sooner", "middle", "later"}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("tasks[%d] = %q, want %q", i, tasks[i].Title, title)
		}
	}
}

func TestUpcomingSkipsCompletedAndLimits(t *testing.T) {
	p := newTestPlanner()
	base := fixedTime()
	done, _ := p.Add("done already", base.Add(1*time.Hour))
	for i := range 7 {
		p.Add("open", base.Add(time.Duration(i+2)*time.Hour))
	}
	p.Toggle(done.ID)

	got := p.Upcoming(0)
	if len(got) != defaultUpcomingLimit {
		t.Fatalf("got %d upcoming, want %d", len(got), defaultUpcomingLimit)
	}
	for _, task := range got {
		if task.Completed {
			t.Error("upcoming contains a completed task")
		}
	}

	if got := p.Upcoming(2); len(got) != 2 {
		t.Errorf("Upcoming(2) returned %d tasks", len(got))
	}
}

func TestDueOn(t *testing.T) {
	p := newTestPlanner()
	base := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	p.Add("morning", base)
	p.Add("evening", base.Add(10*time.Hour))
	p.Add("next day", base.Add(26*time.Hour))

	got := p.DueOn(time.Date(2025, 3, 12, 23, 0, 0, 0, time.UTC))
	if len(got) != 2 {
		t.Fatalf("got %d tasks due, want 2", len(got))
	}
}

func TestOverdueAndStats(t *testing.T) {
	p := newTestPlanner()
	base := fixedTime()

	late, _ := p.Add("late", base.Add(-24*time.Hour))
	lateDone, _ := p.Add("late but done", base.Add(-2*time.Hour))
	p.Add("future", base.Add(24*time.Hour))
	p.Toggle(lateDone.ID)

	overdue := p.Overdue()
	if len(overdue) != 1 || overdue[0].ID != late.ID {
		t.Errorf("overdue = %v", overdue)
	}

	stats := p.Stats()
	if stats.Total != 3 || stats.Completed != 1 || stats.Pending != 2 || stats.Overdue != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRescheduleAndRemove(t *testing.T) {
	p := newTestPlanner()
	task, _ := p.Add("movable", fixedTime())

	newDue := fixedTime().Add(72 * time.Hour)
	moved, err := p.Reschedule(task.ID, newDue)
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if !moved.DueDate.Equal(newDue) {
		t.Errorf("DueDate = %v, want %v", moved.DueDate, newDue)
	}

	if err := p.Remove(task.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(p.Tasks()) != 0 {
		t.Error("task not removed")
	}

	var notFound *ErrTaskNotFound
	if err := p.Remove(task.ID); !errors.As(err, &notFound) {
		t.Errorf("want ErrTaskNotFound, got %v", err)
	}
}

func TestLoadSeedsTasks(t *testing.T) {
	seed := []Task{
		{ID: "a", Title: "one", DueDate: fixedTime()},
		{ID: "b", Title: "two", DueDate: fixedTime().Add(time.Hour), Completed: true},
	}
	p := Load(seed)
	if len(p.Tasks()) != 2 {
		t.Fatalf("loaded %d tasks", len(p.Tasks()))
	}
	if len(p.Completed()) != 1 {
		t.Error("completed task not preserved")
	}
}
