package cli

import (
	"context"
	"fmt"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
	"github.com/kyawhtet1234/GoalFlow/internal/errors"
)

// DoneCommand handles the done command
type DoneCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "done", "usage: goalflow done TASK_ID")
	}

	result, err := c.businessAPI.CompleteTask(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	if result.Task.Completed {
		fmt.Printf("Completed: %s. %s\n", result.Task.Description, result.Message)
	} else {
		fmt.Printf("Reopened: %s\n", result.Task.Description)
	}
	return nil
}
