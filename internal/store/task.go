package store

import (
	"context"
	"fmt"

	"github.com/studychamp/studychamp/ent"
	"github.com/studychamp/studychamp/ent/plannertask"
)

// taskRepo implements TaskRepo backed by ent.
type taskRepo struct {
	client *ent.Client
}

func (r *taskRepo) SaveTask(ctx context.Context, task TaskRecord) error {
	exists, err := r.client.PlannerTask.Query().
		Where(plannertask.TaskID(task.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check task %s: %w", task.ID, err)
	}

	if exists {
		_, err = r.client.PlannerTask.Update().
			Where(plannertask.TaskID(task.ID)).
			SetTitle(task.Title).
			SetDueDate(task.DueDate).
			SetCompleted(task.Completed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update task %s: %w", task.ID, err)
		}
		return nil
	}

	create := r.client.PlannerTask.Create().
		SetTaskID(task.ID).
		SetTitle(task.Title).
		SetDueDate(task.DueDate).
		SetCompleted(task.Completed)
	if !task.CreatedAt.IsZero() {
		create = create.SetCreatedAt(task.CreatedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save task %s: %w", task.ID, err)
	}
	return nil
}

func (r *taskRepo) ListTasks(ctx context.Context) ([]TaskRecord, error) {
	rows, err := r.client.PlannerTask.Query().
		Order(ent.Asc(plannertask.FieldDueDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	out := make([]TaskRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, TaskRecord{
			ID:        row.TaskID,
			Title:     row.Title,
			DueDate:   row.DueDate,
			Completed: row.Completed,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *taskRepo) DeleteTask(ctx context.Context, id string) error {
	n, err := r.client.PlannerTask.Delete().
		Where(plannertask.TaskID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("task %q not found", id)
	}
	return nil
}
