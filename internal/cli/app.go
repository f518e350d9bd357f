// Package cli is the interactive menu front end over an in-memory task store.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fastygo/todo/domain"
	taskUC "github.com/fastygo/todo/usecase/task"
)

// LocalOwner owns every task created through the CLI.
const LocalOwner = "local"

var errQuit = errors.New("quit")

// Options tune an App. Zero values fall back to colourless output, no filter
// and creation order.
type Options struct {
	Styles *Styles
	Status string
	Sort   string
}

// App runs the numbered menu loop. It is single-threaded and owns nothing
// but its reader; the task store lives behind the use case.
type App struct {
	tasks  *taskUC.UseCase
	in     *bufio.Reader
	out    io.Writer
	styles Styles
	status string
	sort   string
}

func New(tasks *taskUC.UseCase, in io.Reader, out io.Writer, opts Options) *App {
	styles := NewStyles(out, false)
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	return &App{
		tasks:  tasks,
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
		status: opts.Status,
		sort:   opts.Sort,
	}
}

// Run loops until the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.println(a.styles.Info("Welcome to the Todo CLI Application!"))
	a.println(a.styles.Info("All data is stored in memory only and will be lost when the application exits."))

	for {
		if err := ctx.Err(); err != nil {
			a.goodbye()
			return nil
		}

		a.menu()
		choice, err := a.prompt("Enter your choice: ")
		if err != nil {
			// EOF at the menu behaves like choosing Quit
			a.goodbye()
			return nil
		}

		switch choice {
		case "1":
			err = a.addTask(ctx)
		case "2":
			err = a.viewTasks(ctx)
		case "3":
			err = a.updateTask(ctx)
		case "4":
			err = a.deleteTask(ctx)
		case "5":
			err = a.toggleTask(ctx)
		case "6":
			a.goodbye()
			return nil
		default:
			a.println(a.styles.Error("Invalid choice. Please enter a number between 1 and 6."))
		}
		if errors.Is(err, errQuit) {
			a.goodbye()
			return nil
		}
		if err != nil {
			return err
		}

		a.println("")
		if _, err := a.prompt("Press Enter to continue..."); err != nil {
			a.goodbye()
			return nil
		}
	}
}

func (a *App) menu() {
	rule := strings.Repeat("=", 40)
	a.println("")
	a.println(a.styles.Info(rule))
	a.println(a.styles.Info("Todo CLI Application"))
	a.println(a.styles.Info(rule))
	for i, item := range []string{"Add Task", "View Tasks", "Update Task", "Delete Task", "Toggle Complete", "Quit"} {
		a.println(a.styles.Info(fmt.Sprintf("%d. %s", i+1, item)))
	}
	a.println(a.styles.Info(strings.Repeat("-", 40)))
}

func (a *App) addTask(ctx context.Context) error {
	a.section("Add New Task")

	title, err := a.prompt("Enter task title: ")
	if err != nil {
		return errQuit
	}
	if title == "" {
		a.println(a.styles.Error("Error: Title cannot be empty"))
		return nil
	}

	description, err := a.prompt("Enter task description (optional, press Enter to skip): ")
	if err != nil {
		return errQuit
	}

	draft := domain.TaskDraft{Title: title}
	if description != "" {
		draft.Description = &description
	}

	task, err := a.tasks.CreateTask(ctx, LocalOwner, LocalOwner, draft)
	if err != nil {
		return a.report(err)
	}
	a.println(a.styles.Success(fmt.Sprintf("Task added successfully with ID: %d", task.ID)))
	return nil
}

func (a *App) viewTasks(ctx context.Context) error {
	a.section("View Tasks")

	tasks, err := a.tasks.ListTasks(ctx, LocalOwner, LocalOwner, a.status, a.sort)
	if err != nil {
		return a.report(err)
	}
	if len(tasks) == 0 {
		a.println(a.styles.Info("No tasks found."))
		return nil
	}

	a.println(a.styles.Info(fmt.Sprintf("%-4s | %-20s | %s", "ID", "Title", "Status")))
	a.println(a.styles.Info(strings.Repeat("-", 40)))
	for _, task := range tasks {
		a.println(a.styles.Row(task))
	}
	return nil
}

func (a *App) updateTask(ctx context.Context) error {
	a.section("Update Task")

	task, err := a.lookup(ctx, "Enter task ID to update: ")
	if err != nil || task == nil {
		return err
	}
	a.println(a.styles.Info("Current task: ") + a.styles.Task(*task))

	current := ""
	if task.Description != nil {
		current = *task.Description
	}

	title, err := a.prompt(fmt.Sprintf("Enter new title (current: '%s', press Enter to keep current): ", task.Title))
	if err != nil {
		return errQuit
	}
	description, err := a.prompt(fmt.Sprintf("Enter new description (current: '%s', press Enter to keep current): ", current))
	if err != nil {
		return errQuit
	}

	var patch domain.TaskPatch
	if title != "" {
		patch.Title = &title
	}
	if description != "" {
		patch.Description = &description
	}

	if _, err := a.tasks.UpdateTask(ctx, LocalOwner, LocalOwner, task.ID, patch); err != nil {
		return a.report(err)
	}
	a.println(a.styles.Success("Task updated successfully"))
	return nil
}

func (a *App) deleteTask(ctx context.Context) error {
	a.section("Delete Task")

	task, err := a.lookup(ctx, "Enter task ID to delete: ")
	if err != nil || task == nil {
		return err
	}
	a.println(a.styles.Info("Task to delete: ") + a.styles.Task(*task))

	answer, err := a.ask(a.styles.Warning("Are you sure you want to delete this task? (y/N): "))
	if err != nil {
		return errQuit
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		a.println(a.styles.Info("Task deletion cancelled"))
		return nil
	}

	if err := a.tasks.DeleteTask(ctx, LocalOwner, LocalOwner, task.ID); err != nil {
		return a.report(err)
	}
	a.println(a.styles.Success("Task deleted successfully"))
	return nil
}

func (a *App) toggleTask(ctx context.Context) error {
	a.section("Toggle Task Completion")

	task, err := a.lookup(ctx, "Enter task ID to toggle: ")
	if err != nil || task == nil {
		return err
	}
	a.println(a.styles.Info("Current task: ") + a.styles.Task(*task))

	toggled, err := a.tasks.ToggleTask(ctx, LocalOwner, LocalOwner, task.ID)
	if err != nil {
		return a.report(err)
	}
	if toggled.Completed {
		a.println(a.styles.Success("Task marked as completed"))
	} else {
		a.println(a.styles.Error("Task marked as incomplete"))
	}
	return nil
}

// lookup prompts for an id and loads the task. A nil task with a nil error
// means the problem was already reported to the user.
func (a *App) lookup(ctx context.Context, label string) (*domain.Task, error) {
	raw, err := a.prompt(label)
	if err != nil {
		return nil, errQuit
	}
	if raw == "" {
		a.println(a.styles.Error("Error: Task ID cannot be empty"))
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		a.println(a.styles.Error("Error: Task ID must be a number"))
		return nil, nil
	}

	task, err := a.tasks.GetTask(ctx, LocalOwner, LocalOwner, id)
	if errors.Is(err, domain.ErrTaskNotFound) {
		a.println(a.styles.Error(fmt.Sprintf("Error: Task with ID %d does not exist", id)))
		return nil, nil
	}
	if err != nil {
		return nil, a.report(err)
	}
	return task, nil
}

// report prints domain errors and keeps the loop alive. Anything else ends Run.
func (a *App) report(err error) error {
	var dErr *domain.Error
	if errors.As(err, &dErr) {
		a.println(a.styles.Error("Error: " + dErr.Message))
		return nil
	}
	return err
}

func (a *App) prompt(label string) (string, error) {
	return a.ask(a.styles.Info(label))
}

// ask prints an already styled label and reads one trimmed line.
func (a *App) ask(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) section(title string) {
	a.println("")
	a.println(a.styles.Info("--- " + title + " ---"))
}

func (a *App) goodbye() {
	a.println("")
	a.println(a.styles.Info("Thank you for using the Todo CLI Application. Goodbye!"))
}

func (a *App) println(text string) {
	fmt.Fprintln(a.out, text)
}
