package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
	"github.com/kyawhtet1234/GoalFlow/internal/errors"
	"github.com/kyawhtet1234/GoalFlow/internal/services"
)

// SalesCommand handles the sales command
type SalesCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewSalesCommand creates a new sales command handler
func NewSalesCommand(app *App) *SalesCommand {
	return &SalesCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the sales command. With no arguments it shows today's
// progress; with an amount it records a sale.
func (c *SalesCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		dashboard, err := c.businessAPI.GetDashboard(ctx)
		if err != nil {
			return c.errorHandler.Handle("show sales", err)
		}
		fmt.Println(formatSalesProgress(dashboard.Sales))
		return nil
	}

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.NewInvalidInputError("amount", args[0], "expected a number")
	}

	progress, err := c.businessAPI.RecordSales(ctx, amount)
	if err != nil {
		return c.errorHandler.Handle("record sales", err)
	}

	fmt.Printf("Recorded %s. %s\n", formatAmount(amount), formatSalesProgress(progress))
	return nil
}

// formatSalesProgress renders the goal line shown by several commands
func formatSalesProgress(progress *services.SalesProgress) string {
	return fmt.Sprintf("Today's sales: %s of %s (%.0f%%)",
		formatAmount(progress.Total), formatAmount(progress.Goal), progress.Percent)
}
