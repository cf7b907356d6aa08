package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
	"github.com/kyawhtet1234/GoalFlow/internal/config"
	"github.com/kyawhtet1234/GoalFlow/internal/repository/sqlite"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd         *cobra.Command
	businessAPI api.BusinessAPI
	repository  sqlite.Repository
	config      *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(businessAPI api.BusinessAPI, repository sqlite.Repository, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		businessAPI: businessAPI,
		repository:  repository,
		config:      cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "goalflow",
		Short: "A command-line daily task and sales goal tracker",
		Long: `GoalFlow is a command-line application for tracking daily tasks,
categories and a daily sales goal.

FEATURES:
  • Add one-off or recurring tasks (daily, or weekly on chosen weekdays)
  • Check tasks off and browse a day-by-day completion history
  • Organize tasks into categories
  • Track a daily sales goal whose running total resets each day
  • Export the whole store to CSV or JSON
  • Fully configurable via environment variables and command-line flags

EXAMPLES:
  goalflow add "Buy groceries" due=2024-06-05     # Add a dated task
  goalflow add "Morning run" repeat=daily         # Add a task for each of the next 7 days
  goalflow add "Standup" repeat=weekly:mon,wed    # Add a task on Mondays and Wednesdays
  goalflow add "Send invoices" category=work      # Add a task in a category
  goalflow list                                   # Show pending tasks
  goalflow done TASK_ID                           # Check a task off (or back on)
  goalflow delete TASK_ID                         # Delete a task (whole batch if recurring)
  goalflow history                                # Completed tasks grouped by day
  goalflow category add Errands                   # Manage categories
  goalflow goal 2000                              # Set the daily sales goal
  goalflow sales 150                              # Record a sale
  goalflow summary                                # Dashboard view
  goalflow export format=csv > backup.csv         # Export everything

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    GOALFLOW_DB_DIR                        Database directory (default: ~/.goalflow)
    GOALFLOW_DB_FILENAME                   Database filename (default: goalflow.db)

  Validation Configuration:
    GOALFLOW_VALIDATION_DESCRIPTION_MIN    Min task description length (default: 3)
    GOALFLOW_VALIDATION_DESCRIPTION_MAX    Max task description length (default: 255)

  Recurrence Configuration:
    GOALFLOW_RECURRENCE_WINDOW             Days a recurring task expands across (default: 7)

  Sales Configuration:
    GOALFLOW_DEFAULT_SALES_GOAL            Goal used before one is set (default: 1000)

  Application Configuration:
    GOALFLOW_APP_TIMEOUT                   Application timeout (default: 30s)
    GOALFLOW_APP_VERBOSE                   Enable verbose output (default: false)
    GOALFLOW_LOG_LEVEL                     Log level (default: warning)

GETTING HELP:
  goalflow [command] --help                # Get help for any specific command
  goalflow completion bash                 # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides GOALFLOW_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides GOALFLOW_DB_FILENAME)")

	// Validation configuration
	flags.Int("description-min-length", 0, "Minimum task description length (overrides GOALFLOW_VALIDATION_DESCRIPTION_MIN)")
	flags.Int("description-max-length", 0, "Maximum task description length (overrides GOALFLOW_VALIDATION_DESCRIPTION_MAX)")

	// Recurrence configuration
	flags.Int("recurrence-window", 0, "Days a recurring task expands across (overrides GOALFLOW_RECURRENCE_WINDOW)")

	// Sales configuration
	flags.Float64("default-sales-goal", 0, "Default daily sales goal (overrides GOALFLOW_DEFAULT_SALES_GOAL)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides GOALFLOW_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides GOALFLOW_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [task description] [due=DATE] [category=ID] [repeat=daily|weekly:DAYS]",
		Short: "Add a task",
		Long: `Add a one-off or recurring task.

Options are given as key=value arguments after the description:
  due=2024-06-05 | due=today | due=tomorrow
  category=CATEGORY_ID
  repeat=daily | repeat=weekly:mon,wed

A recurring task is expanded into one instance per matching day over the
next week, and the whole batch can later be deleted through any instance.

Examples:
  goalflow add "Buy groceries" due=tomorrow
  goalflow add "Morning run" repeat=daily category=health`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(r.newApp()).Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List pending tasks",
		Long:  "List incomplete tasks ordered by deadline, with undated tasks last.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(r.newApp()).Execute(ctx, args)
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done TASK_ID",
		Short: "Toggle a task's completion",
		Long:  "Check a task off. Running it again on a completed task reopens it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDoneCommand(r.newApp()).Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete TASK_ID",
		Short: "Delete a task",
		Long: `Delete a task. Deleting any instance of a recurring task removes
the whole batch it was created with.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDeleteCommand(r.newApp()).Execute(ctx, args)
		},
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show completion history",
		Long:  "Show completed tasks grouped by calendar day, newest day first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewHistoryCommand(r.newApp()).Execute(ctx, args)
		},
	}

	categoryCmd := &cobra.Command{
		Use:   "category [add|list|rename|delete]",
		Short: "Manage categories",
		Long: `Manage task categories.

Examples:
  goalflow category                  # List categories
  goalflow category add Errands      # Add a category
  goalflow category rename ID Name   # Rename a category
  goalflow category delete ID        # Delete a category, detaching its tasks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewCategoryCommand(r.newApp()).Execute(ctx, args)
		},
	}

	goalCmd := &cobra.Command{
		Use:   "goal [VALUE]",
		Short: "Show or set the daily sales goal",
		Long:  "With no arguments, show today's sales progress. With a value, replace the daily goal.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewGoalCommand(r.newApp()).Execute(ctx, args)
		},
	}

	salesCmd := &cobra.Command{
		Use:   "sales [AMOUNT]",
		Short: "Record a sale or show today's total",
		Long: `With an amount, add it to today's running total. With no arguments,
show today's progress. The total resets the first time it is observed on
a new calendar day.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSalesCommand(r.newApp()).Execute(ctx, args)
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the dashboard",
		Long:  "Show pending tasks, today's completions and sales progress in one view.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSummaryCommand(r.newApp()).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export format=csv|json",
		Short: "Export the whole store",
		Long: `Export every stored document in the specified format.

Supported formats:
  csv  - one row per stored document
  json - one object keyed by document name

Example:
  goalflow export format=csv > backup.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewExportCommand(r.newApp()).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		doneCmd,
		deleteCmd,
		historyCmd,
		categoryCmd,
		goalCmd,
		salesCmd,
		summaryCmd,
		exportCmd,
	)
}

// newApp builds the handler dependencies for one command invocation
func (r *RootCommand) newApp() *App {
	return NewApp(r.businessAPI, r.repository, r.config)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Database configuration
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}

	// Validation configuration
	if minLength, _ := flags.GetInt("description-min-length"); minLength > 0 {
		r.config.Validation.DescriptionMinLength = minLength
	}
	if maxLength, _ := flags.GetInt("description-max-length"); maxLength > 0 {
		r.config.Validation.DescriptionMaxLength = maxLength
	}

	// Recurrence configuration
	if window, _ := flags.GetInt("recurrence-window"); window > 0 {
		r.config.Recurrence.WindowDays = window
	}

	// Sales configuration
	if defaultGoal, _ := flags.GetFloat64("default-sales-goal"); defaultGoal > 0 {
		r.config.Sales.DefaultGoal = defaultGoal
	}

	// Application configuration
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
