package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
	"github.com/kyawhtet1234/GoalFlow/internal/errors"
)

// GoalCommand handles the goal command
type GoalCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewGoalCommand creates a new goal command handler
func NewGoalCommand(app *App) *GoalCommand {
	return &GoalCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the goal command. With no arguments it shows today's
// progress; with a value it replaces the daily goal.
func (c *GoalCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.showProgress(ctx)
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.NewInvalidInputError("goal", args[0], "expected a number")
	}

	if err := c.businessAPI.SetSalesGoal(ctx, value); err != nil {
		return c.errorHandler.Handle("set sales goal", err)
	}

	fmt.Printf("Daily sales goal set to %s\n", formatAmount(value))
	return nil
}

func (c *GoalCommand) showProgress(ctx context.Context) error {
	dashboard, err := c.businessAPI.GetDashboard(ctx)
	if err != nil {
		return c.errorHandler.Handle("show sales goal", err)
	}

	fmt.Println(formatSalesProgress(dashboard.Sales))
	return nil
}

// formatAmount renders a sales amount without trailing zeros
func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
