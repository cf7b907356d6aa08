package cli

import (
	"context"

	"github.com/kyawhtet1234/GoalFlow/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// Register all commands
	registry.Register("add", NewAddCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("done", NewDoneCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("history", NewHistoryCommand(app))
	registry.Register("category", NewCategoryCommand(app))
	registry.Register("goal", NewGoalCommand(app))
	registry.Register("sales", NewSalesCommand(app))
	registry.Register("summary", NewSummaryCommand(app))
	registry.Register("export", NewExportCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return "usage: goalflow add \"your task\" [due=DATE] [category=ID] [repeat=daily|weekly:mon,wed] | list | done ID | delete ID | history | category add|list|rename|delete | goal [VALUE] | sales [AMOUNT] | summary | export format=csv|json"
}
