package cli

import (
	"context"
	"fmt"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
	"github.com/kyawhtet1234/GoalFlow/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: goalflow delete TASK_ID")
	}

	removed, err := c.businessAPI.DeleteTaskCascade(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	if removed > 1 {
		fmt.Printf("Deleted %d tasks from the recurring schedule\n", removed)
	} else {
		fmt.Println("Deleted task")
	}
	return nil
}
