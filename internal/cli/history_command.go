package cli

import (
	"context"
	"fmt"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewHistoryCommand creates a new history command handler
func NewHistoryCommand(app *App) *HistoryCommand {
	return &HistoryCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context, args []string) error {
	history, err := c.businessAPI.GetHistory(ctx)
	if err != nil {
		return c.errorHandler.Handle("show history", err)
	}

	if len(history) == 0 {
		fmt.Println("No completed tasks yet")
		return nil
	}

	for _, day := range history {
		fmt.Printf("%s:\n", day.Date)
		for _, view := range day.Tasks {
			line := fmt.Sprintf("  ✓ %s", view.Task.Description)
			if view.CategoryName != "" {
				line += fmt.Sprintf(" #%s", view.CategoryName)
			}
			fmt.Println(line)
		}
	}
	return nil
}
