package lifelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/app"
	"github.com/saadjs/lifelog/internal/clock"
	"github.com/saadjs/lifelog/internal/ledger"
	"github.com/saadjs/lifelog/internal/model"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var (
	taskTitle     string
	taskDue       string
	taskPriority  string
	taskCategory  string
	taskCompleted bool
	taskListToday bool
	taskListOpen  bool
)

func parsePriority(value string) (model.Priority, error) {
	p := model.Priority(strings.ToLower(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid --priority %q (use low, medium or high)", value)
	}
	return p, nil
}

// parseDueDate turns YYYY-MM-DD into a local-midnight timestamp; empty
// clears the due date.
func parseDueDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	t, err := time.ParseInLocation(clock.DateLayout, value, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid --due %q (expected YYYY-MM-DD)", value)
	}
	return t.Format(time.RFC3339), nil
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(taskTitle)
		if title == "" {
			return fmt.Errorf("--title is required")
		}
		priority, err := parsePriority(taskPriority)
		if err != nil {
			return err
		}
		due, err := parseDueDate(taskDue)
		if err != nil {
			return err
		}
		return withState(func(s *app.State) error {
			t := s.Productivity.AddTask(ledger.TaskInput{
				Title:    title,
				DueDate:  due,
				Priority: priority,
				Category: strings.TrimSpace(taskCategory),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s\n", t.ID)
			return nil
		})
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			tasks := s.Productivity.Tasks()
			if taskListToday {
				tasks = s.Productivity.TodaysTasks()
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDONE\tPRIORITY\tDUE\tCATEGORY\tTITLE")
			for _, t := range tasks {
				if taskListOpen && t.Completed {
					continue
				}
				done := " "
				if t.Completed {
					done = "x"
				}
				due := ""
				if t.DueDate != "" {
					due = t.DueDate[:min(len(t.DueDate), 10)]
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t[%s]\t%s\t%s\t%s\t%s\n", t.ID, done, t.Priority, due, t.Category, t.Title)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed: %d | Open: %d\n", s.Productivity.CompletedTasksCount(), s.Productivity.OpenTasksCount())
			return nil
		})
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update task fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var u ledger.TaskUpdate
		flags := cmd.Flags()
		if flags.Changed("title") {
			title := strings.TrimSpace(taskTitle)
			if title == "" {
				return fmt.Errorf("--title cannot be empty")
			}
			u.Title = &title
		}
		if flags.Changed("priority") {
			p, err := parsePriority(taskPriority)
			if err != nil {
				return err
			}
			u.Priority = &p
		}
		if flags.Changed("due") {
			due, err := parseDueDate(taskDue)
			if err != nil {
				return err
			}
			u.DueDate = &due
		}
		if flags.Changed("category") {
			category := strings.TrimSpace(taskCategory)
			u.Category = &category
		}
		if flags.Changed("completed") {
			completed := taskCompleted
			u.Completed = &completed
		}
		if u == (ledger.TaskUpdate{}) {
			return fmt.Errorf("set at least one flag")
		}
		return withState(func(s *app.State) error {
			if _, ok := s.Productivity.Task(args[0]); !ok {
				return fmt.Errorf("task %s not found", args[0])
			}
			s.Productivity.UpdateTask(args[0], u)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", args[0])
			return nil
		})
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle task completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			if _, ok := s.Productivity.Task(args[0]); !ok {
				return fmt.Errorf("task %s not found", args[0])
			}
			s.Productivity.ToggleTaskCompletion(args[0])
			t, _ := s.Productivity.Task(args[0])
			state := "open"
			if t.Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s is %s\n", t.ID, state)
			return nil
		})
	},
}

var taskRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			if _, ok := s.Productivity.Task(args[0]); !ok {
				return fmt.Errorf("task %s not found", args[0])
			}
			s.Productivity.RemoveTask(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", args[0])
			return nil
		})
	},
}

var taskClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			n := s.Productivity.CompletedTasksCount()
			s.Productivity.ClearCompletedTasks()
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d completed task(s)\n", n)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskUpdateCmd, taskDoneCmd, taskRemoveCmd, taskClearCmd)

	for _, c := range []*cobra.Command{taskAddCmd, taskUpdateCmd} {
		c.Flags().StringVar(&taskTitle, "title", "", "Task title")
		c.Flags().StringVar(&taskDue, "due", "", "Due date YYYY-MM-DD")
		c.Flags().StringVar(&taskPriority, "priority", "medium", "Priority: low, medium or high")
		c.Flags().StringVar(&taskCategory, "category", "", "Optional category")
	}
	_ = taskAddCmd.MarkFlagRequired("title")
	taskUpdateCmd.Flags().BoolVar(&taskCompleted, "completed", false, "Mark completed (true/false)")

	taskListCmd.Flags().BoolVar(&taskListToday, "today", false, "Only tasks due today or undated")
	taskListCmd.Flags().BoolVar(&taskListOpen, "open", false, "Hide completed tasks")
}
