package cli

import (
	"context"
	"fmt"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the summary command, showing the whole dashboard: pending
// tasks, today's completions and sales progress.
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	dashboard, err := c.businessAPI.GetDashboard(ctx)
	if err != nil {
		return c.errorHandler.Handle("show summary", err)
	}

	fmt.Printf("Today: %d of %d tasks done (%.0f%%)\n",
		dashboard.Progress.Completed, dashboard.Progress.Total, dashboard.Progress.Percent)

	if len(dashboard.Pending) == 0 {
		fmt.Println("Pending tasks: none")
	} else {
		fmt.Printf("Pending tasks (%d):\n", len(dashboard.Pending))
		for _, view := range dashboard.Pending {
			fmt.Println(formatTaskLine(view))
		}
	}

	if len(dashboard.CompletedToday) == 0 {
		fmt.Println("Completed today: none")
	} else {
		fmt.Printf("Completed today (%d):\n", len(dashboard.CompletedToday))
		for _, view := range dashboard.CompletedToday {
			fmt.Printf("  ✓ %s\n", view.Task.Description)
		}
	}

	if len(dashboard.Breakdown) > 0 {
		fmt.Println("By category:")
		for _, row := range dashboard.Breakdown {
			fmt.Printf("  %s: %d/%d done\n", row.CategoryName, row.Completed, row.Total)
		}
	}

	fmt.Println(formatSalesProgress(dashboard.Sales))
	return nil
}
