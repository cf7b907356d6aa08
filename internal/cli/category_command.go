package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
	"github.com/kyawhtet1234/GoalFlow/internal/errors"
)

// CategoryCommand handles the category command and its subcommands
type CategoryCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewCategoryCommand creates a new category command handler
func NewCategoryCommand(app *App) *CategoryCommand {
	return &CategoryCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the category command
func (c *CategoryCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.listCategories(ctx)
	}

	subcommand := args[0]
	rest := args[1:]

	switch subcommand {
	case "list":
		return c.listCategories(ctx)
	case "add":
		return c.addCategory(ctx, rest)
	case "rename":
		return c.renameCategory(ctx, rest)
	case "delete":
		return c.deleteCategory(ctx, rest)
	default:
		return errors.NewInvalidInputError("command", subcommand, "usage: goalflow category add|list|rename|delete")
	}
}

func (c *CategoryCommand) listCategories(ctx context.Context) error {
	categories, err := c.businessAPI.ListCategories(ctx)
	if err != nil {
		return c.errorHandler.Handle("list categories", err)
	}

	if len(categories) == 0 {
		fmt.Println("No categories")
		return nil
	}

	fmt.Printf("Categories (%d):\n", len(categories))
	for _, category := range categories {
		fmt.Printf("  [%s] %s\n", category.ID, category.Name)
	}
	return nil
}

func (c *CategoryCommand) addCategory(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "category add", "usage: goalflow category add NAME")
	}

	category, err := c.businessAPI.AddCategory(ctx, strings.Join(args, " "))
	if err != nil {
		return c.errorHandler.Handle("add category", err)
	}

	fmt.Printf("Added category: %s [%s]\n", category.Name, category.ID)
	return nil
}

func (c *CategoryCommand) renameCategory(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "category rename", "usage: goalflow category rename ID NEW_NAME")
	}

	category, err := c.businessAPI.RenameCategory(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return c.errorHandler.Handle("rename category", err)
	}

	fmt.Printf("Renamed category to: %s\n", category.Name)
	return nil
}

func (c *CategoryCommand) deleteCategory(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "category delete", "usage: goalflow category delete ID")
	}

	detached, err := c.businessAPI.DeleteCategoryCascade(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("delete category", err)
	}

	if detached > 0 {
		fmt.Printf("Deleted category, %d tasks are now uncategorized\n", detached)
	} else {
		fmt.Println("Deleted category")
	}
	return nil
}
