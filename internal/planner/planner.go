// Package planner manages the study task list: dated tasks that can be
// completed, rescheduled, and queried by due date.
package planner

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is a single study task on the planner.
type Task struct {
	ID        string
	Title     string
	DueDate   time.Time
	Completed bool
	CreatedAt time.Time
}

// Stats summarizes the state of the task list.
type Stats struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
}

// ErrTaskNotFound is returned when no task has the requested ID.
type ErrTaskNotFound struct {
	ID string
}

func (e *ErrTaskNotFound) Error() string {
	return fmt.Sprintf("task %q not found", e.ID)
}

// defaultUpcomingLimit matches the planner view, which previews the next
// few open tasks.
const defaultUpcomingLimit = 5

// Planner holds the task list.
type Planner struct {
	tasks []Task

	now func() time.Time
}

// New creates an empty Planner.
func New() *Planner {
	return &Planner{now: time.Now}
}

// Load creates a Planner seeded with existing tasks.
func Load(tasks []Task) *Planner {
	p := New()
	p.tasks = append(p.tasks, tasks...)
	return p
}

// Add creates a new task due at the given time.
func (p *Planner) Add(title string, due time.Time) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, fmt.Errorf("empty task title")
	}

	task := Task{
		ID:        uuid.NewString(),
		Title:     title,
		DueDate:   due,
		CreatedAt: p.now(),
	}
	p.tasks = append(p.tasks, task)
	return task, nil
}

// Toggle flips a task's completion state and returns the updated task.
func (p *Planner) Toggle(id string) (Task, error) {
	for i := range p.tasks {
		if p.tasks[i].ID == id {
			p.tasks[i].Completed = !p.tasks[i].Completed
			return p.tasks[i], nil
		}
	}
	return Task{}, &ErrTaskNotFound{ID: id}
}

// Reschedule moves a task to a new due date.
func (p *Planner) Reschedule(id string, due time.Time) (Task, error) {
	for i := range p.tasks {
		if p.tasks[i].ID == id {
			p.tasks[i].DueDate = due
			return p.tasks[i], nil
		}
	}
	return Task{}, &ErrTaskNotFound{ID: id}
}

// Remove deletes a task from the planner.
func (p *Planner) Remove(id string) error {
	for i := range p.tasks {
		if p.tasks[i].ID == id {
			p.tasks = append(p.tasks[:i], p.tasks[i+1:]...)
			return nil
		}
	}
	return &ErrTaskNotFound{ID: id}
}

// Tasks returns all tasks sorted by due date, earliest first.
func (p *Planner) Tasks() []Task {
	out := make([]Task, len(p.tasks))
	copy(out, p.tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// Upcoming returns the next open tasks, soonest first. A limit below 1
// falls back to the default preview size.
func (p *Planner) Upcoming(limit int) []Task {
	if limit < 1 {
		limit = defaultUpcomingLimit
	}
	var out []Task
	for _, t := range p.Tasks() {
		if t.Completed {
			continue
		}
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Completed returns all finished tasks sorted by due date.
func (p *Planner) Completed() []Task {
	var out []Task
	for _, t := range p.Tasks() {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// DueOn returns the tasks due on the same calendar day as date.
func (p *Planner) DueOn(date time.Time) []Task {
	y, m, d := date.Date()
	var out []Task
	for _, t := range p.Tasks() {
		ty, tm, td := t.DueDate.Date()
		if ty == y && tm == m && td == d {
			out = append(out, t)
		}
	}
	return out
}

// Overdue returns open tasks whose due date has passed.
func (p *Planner) Overdue() []Task {
	now := p.now()
	var out []Task
	for _, t := range p.Tasks() {
		if !t.Completed && t.DueDate.Before(now) {
			out = append(out, t)
		}
	}
	return out
}

// Stats summarizes the task list.
func (p *Planner) Stats() Stats {
	s := Stats{Total: len(p.tasks)}
	now := p.now()
	for _, t := range p.tasks {
		if t.Completed {
			s.Completed++
			continue
		}
		s.Pending++
		if t.DueDate.Before(now) {
			s.Overdue++
		}
	}
	return s
}
