package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository/memory"
	taskUC "github.com/fastygo/todo/usecase/task"
)

func runScript(t *testing.T, script string, opts Options) (string, *taskUC.UseCase) {
	t.Helper()
	uc := taskUC.New(memory.NewTaskRepository(nil), nil, nil)
	var out bytes.Buffer

	app := New(uc, strings.NewReader(script), &out, opts)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String(), uc
}

func listAll(t *testing.T, uc *taskUC.UseCase) []domain.Task {
	t.Helper()
	tasks, err := uc.ListTasks(context.Background(), LocalOwner, LocalOwner, "", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	return tasks
}

func TestMenuWalkthrough(t *testing.T) {
	script := strings.Join([]string{
		"1", "Buy milk", "2L", "",
		"1", "   ", "",
		"1", "Walk dog", "", "",
		"2", "",
		"5", "1", "",
		"3", "1", "Buy oat milk", "", "",
		"4", "2", "n", "",
		"4", "2", "YES", "",
		"4", "9", "",
		"5", "abc", "",
		"3", "", "",
		"7", "",
		"6",
	}, "\n") + "\n"

	out, uc := runScript(t, script, Options{})

	for _, want := range []string{
		"Welcome to the Todo CLI Application!",
		"1. Add Task",
		"6. Quit",
		"Task added successfully with ID: 1",
		"Task added successfully with ID: 2",
		"Error: Title cannot be empty",
		"Task marked as completed",
		"Current task: ✓ 1: Buy milk",
		"Task updated successfully",
		"Task deletion cancelled",
		"Task deleted successfully",
		"Error: Task with ID 9 does not exist",
		"Error: Task ID must be a number",
		"Error: Task ID cannot be empty",
		"Invalid choice. Please enter a number between 1 and 6.",
		"Press Enter to continue...",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q\n%s", want, out)
		}
	}

	if !hasLine(out, "Buy milk", "○ Incomplete") || !hasLine(out, "Walk dog", "○ Incomplete") {
		t.Fatalf("task table missing rows\n%s", out)
	}

	tasks := listAll(t, uc)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task left, got %#v", tasks)
	}
	task := tasks[0]
	if task.ID != 1 || task.Title != "Buy oat milk" || !task.Completed {
		t.Fatalf("unexpected task %#v", task)
	}
	if task.Description == nil || *task.Description != "2L" {
		t.Fatalf("empty input must keep the description, got %v", task.Description)
	}
}

func TestEOFQuits(t *testing.T) {
	tests := map[string]string{
		"at menu":        "",
		"mid prompt":     "1\nDraft",
		"at pause":       "2\n",
		"during confirm": "1\nx\n\n\n4\n1\n",
	}
	for name, script := range tests {
		t.Run(name, func(t *testing.T) {
			out, uc := runScript(t, script, Options{})
			if !strings.Contains(out, "Goodbye!") {
				t.Fatalf("expected goodbye, got\n%s", out)
			}
			for _, task := range listAll(t, uc) {
				if task.Title == "Draft" {
					t.Fatalf("interrupted add must not create a task")
				}
			}
		})
	}
}

func TestViewUsesQueryPolicy(t *testing.T) {
	script := strings.Join([]string{
		"1", "banana", "", "",
		"1", "apple", "", "",
		"1", "cherry", "", "",
		"5", "2", "",
		"2", "",
		"6",
	}, "\n") + "\n"

	out, _ := runScript(t, script, Options{Status: " Pending ", Sort: "title"})

	view := out[strings.LastIndex(out, "--- View Tasks ---"):]
	banana := strings.Index(view, "banana")
	cherry := strings.Index(view, "cherry")
	if banana < 0 || cherry < 0 || banana > cherry {
		t.Fatalf("expected banana before cherry in\n%s", view)
	}
	if strings.Contains(view, "apple") {
		t.Fatalf("completed task shown under pending filter\n%s", view)
	}
}

func TestViewEmpty(t *testing.T) {
	out, _ := runScript(t, "2\n\n6\n", Options{})
	if !strings.Contains(out, "No tasks found.") {
		t.Fatalf("expected empty notice\n%s", out)
	}
}

func TestContextCancelStopsLoop(t *testing.T) {
	uc := taskUC.New(memory.NewTaskRepository(nil), nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err := New(uc, strings.NewReader("1\nx\n"), &out, Options{}).Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(out.String(), "Add New Task") {
		t.Fatalf("cancelled context should stop before reading the menu")
	}
}

func hasLine(out string, parts ...string) bool {
	for _, line := range strings.Split(out, "\n") {
		found := true
		for _, part := range parts {
			if !strings.Contains(line, part) {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}
