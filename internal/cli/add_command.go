package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
	"github.com/kyawhtet1234/GoalFlow/internal/domain"
	"github.com/kyawhtet1234/GoalFlow/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	positional, options := parseOptions(args)
	if len(positional) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: goalflow add \"your task\" [due=2024-06-05] [category=ID] [repeat=daily|weekly:mon,wed]")
	}
	description := strings.Join(positional, " ")

	var deadline *time.Time
	if value, ok := options["due"]; ok {
		day, err := parseDayArg(value)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		deadline = &day
	}

	recurrence := domain.None()
	if value, ok := options["repeat"]; ok {
		parsed, err := parseRecurrenceOption(value)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		recurrence = parsed
	}

	created, err := c.businessAPI.CreateTask(ctx, description, deadline, options["category"], recurrence)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	switch len(created) {
	case 0:
		fmt.Println("No upcoming days match that schedule, nothing added")
	case 1:
		fmt.Printf("Added task: %s\n", created[0].Description)
	default:
		fmt.Printf("Added %d tasks for the upcoming week: %s\n", len(created), created[0].Description)
	}
	return nil
}
