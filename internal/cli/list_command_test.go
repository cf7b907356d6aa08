package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
	"github.com/kyawhtet1234/GoalFlow/internal/domain"
)

func TestListCommand_Execute(t *testing.T) {
	t.Run("lists pending tasks", func(t *testing.T) {
		app := setupTestApp(t)
		cmd := NewListCommand(app)
		ctx := context.Background()

		_, err := app.businessAPI.CreateTask(ctx, "Buy groceries", nil, "work", domain.None())
		require.NoError(t, err)

		err = cmd.Execute(ctx, nil)
		assert.NoError(t, err)
	})

	t.Run("handles an empty list", func(t *testing.T) {
		app := setupTestApp(t)
		cmd := NewListCommand(app)

		err := cmd.Execute(context.Background(), nil)
		assert.NoError(t, err)
	})
}

func TestFormatTaskLine(t *testing.T) {
	deadline := sunday.AddDate(0, 0, 3)
	task := domain.NewTask("task-1", "Send invoices")
	task.Deadline = &deadline
	task.Recurrence = domain.Daily()
	task.RecurrenceID = "batch-1"

	line := formatTaskLine(api.TaskView{Task: task, CategoryName: "Work"})

	assert.Contains(t, line, "task-1")
	assert.Contains(t, line, "Send invoices")
	assert.Contains(t, line, "due 2024-06-05")
	assert.Contains(t, line, "#Work")
}
