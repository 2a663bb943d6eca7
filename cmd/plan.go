package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/studychamp/studychamp/internal/planner"
	"github.com/studychamp/studychamp/internal/store"
)

const dueDateLayout = "2006-01-02"

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the study planner",
}

var planAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a study task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dueStr, _ := cmd.Flags().GetString("due")
		due := time.Now().AddDate(0, 0, 1)
		if dueStr != "" {
			parsed, err := time.Parse(dueDateLayout, dueStr)
			if err != nil {
				return fmt.Errorf("invalid due date %q (want YYYY-MM-DD): %w", dueStr, err)
			}
			due = parsed
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p := planner.New()
		task, err := p.Add(strings.Join(args, " "), due)
		if err != nil {
			return err
		}

		if err := st.TaskRepo().SaveTask(cmd.Context(), taskRecord(task)); err != nil {
			return fmt.Errorf("save task: %w", err)
		}

		fmt.Printf("Added %q due %s (id %s)\n", task.Title, task.DueDate.Format(dueDateLayout), task.ID)
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List study tasks by due date",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p, err := loadPlanner(cmd, st)
		if err != nil {
			return err
		}

		tasks := p.Tasks()
		if len(tasks) == 0 {
			fmt.Println("No tasks planned. Add one with 'studychamp plan add'.")
			return nil
		}

		for _, t := range tasks {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Printf("[%s] %s  %-30s %s\n", mark, t.DueDate.Format(dueDateLayout), t.Title, t.ID)
		}

		stats := p.Stats()
		fmt.Printf("\n%d total, %d done, %d pending, %d overdue\n",
			stats.Total, stats.Completed, stats.Pending, stats.Overdue)
		return nil
	},
}

var planDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task's completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p, err := loadPlanner(cmd, st)
		if err != nil {
			return err
		}

		task, err := p.Toggle(args[0])
		if err != nil {
			return err
		}
		if err := st.TaskRepo().SaveTask(cmd.Context(), taskRecord(task)); err != nil {
			return fmt.Errorf("save task: %w", err)
		}

		state := "pending"
		if task.Completed {
			state = "done"
		}
		fmt.Printf("%q is now %s\n", task.Title, state)
		return nil
	},
}

var planRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.TaskRepo().DeleteTask(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		fmt.Println("Removed", args[0])
		return nil
	},
}

// loadPlanner hydrates a Planner from the stored task list.
func loadPlanner(cmd *cobra.Command, st *store.Store) (*planner.Planner, error) {
	records, err := st.TaskRepo().ListTasks(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]planner.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, planner.Task{
			ID:        r.ID,
			Title:     r.Title,
			DueDate:   r.DueDate,
			Completed: r.Completed,
			CreatedAt: r.CreatedAt,
		})
	}
	return planner.Load(tasks), nil
}

func taskRecord(t planner.Task) store.TaskRecord {
	return store.TaskRecord{
		ID:        t.ID,
		Title:     t.Title,
		DueDate:   t.DueDate,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
	}
}

func init() {
	planAddCmd.Flags().StringP("due", "d", "", "Due date (YYYY-MM-DD, default tomorrow)")

	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planDoneCmd)
	planCmd.AddCommand(planRmCmd)
}
