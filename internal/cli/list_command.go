package cli

import (
	"context"
	"fmt"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
	"github.com/kyawhtet1234/GoalFlow/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	pending, err := c.businessAPI.ListPendingTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(pending) == 0 {
		fmt.Println("No pending tasks")
		return nil
	}

	fmt.Printf("Pending tasks (%d):\n", len(pending))
	for _, view := range pending {
		fmt.Println(formatTaskLine(view))
	}
	return nil
}

// formatTaskLine renders one task for terminal display
func formatTaskLine(view api.TaskView) string {
	line := fmt.Sprintf("  [%s] %s", view.Task.ID, view.Task.Description)
	if view.Task.Deadline != nil {
		line += fmt.Sprintf(" (due %s)", view.Task.Deadline.Format(domain.DayKeyFormat))
	}
	if view.CategoryName != "" {
		line += fmt.Sprintf(" #%s", view.CategoryName)
	}
	if view.Task.IsRecurring() {
		line += " ↻"
	}
	return line
}
