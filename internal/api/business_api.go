package api

import (
	"context"
	"math/rand"
	"time"

	"github.com/kyawhtet1234/GoalFlow/internal/domain"
	"github.com/kyawhtet1234/GoalFlow/internal/errors"
	"github.com/kyawhtet1234/GoalFlow/internal/services"
)

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	tasks      services.TaskService
	categories services.CategoryService
	sales      services.SalesGoalService
	pickIndex  func(n int) int
}

// NewBusinessAPI creates a new BusinessAPI instance
func NewBusinessAPI(container *services.ServiceContainer) BusinessAPI {
	return &businessAPIImpl{
		tasks:      container.TaskService,
		categories: container.CategoryService,
		sales:      container.SalesGoalService,
		pickIndex:  rand.Intn,
	}
}

// NewBusinessAPIWithPicker creates a BusinessAPI with a deterministic
// completion-message picker for tests.
func NewBusinessAPIWithPicker(container *services.ServiceContainer, pickIndex func(n int) int) BusinessAPI {
	return &businessAPIImpl{
		tasks:      container.TaskService,
		categories: container.CategoryService,
		sales:      container.SalesGoalService,
		pickIndex:  pickIndex,
	}
}

// ========== Task Workflows ==========

func (b *businessAPIImpl) CreateTask(ctx context.Context, description string, deadline *time.Time, categoryID string, recurrence domain.Recurrence) ([]domain.Task, error) {
	// 1. A named category must exist before tasks can reference it
	if categoryID != "" {
		if _, err := b.categories.GetCategory(ctx, categoryID); err != nil {
			if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
				return nil, errors.NewInvalidInputError("category_id", categoryID, "category does not exist")
			}
			return nil, err
		}
	}

	// 2. The task store validates the description and recurrence itself
	return b.tasks.CreateTask(ctx, description, deadline, categoryID, recurrence)
}

func (b *businessAPIImpl) CompleteTask(ctx context.Context, id string) (*CompletionResult, error) {
	task, err := b.tasks.ToggleCompletion(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &CompletionResult{Task: task}
	if task.Completed {
		result.Message = completionMessages[b.pickIndex(len(completionMessages))]
	}
	return result, nil
}

func (b *businessAPIImpl) DeleteTaskCascade(ctx context.Context, id string) (int, error) {
	// 1. Look the task up first to learn whether it belongs to a batch
	task, err := b.tasks.GetTask(ctx, id)
	if err != nil {
		return 0, err
	}

	// 2. A recurring task takes every instance of its batch with it
	if task.RecurrenceID != "" {
		return b.tasks.DeleteBatch(ctx, task.RecurrenceID)
	}

	if err := b.tasks.DeleteTask(ctx, id); err != nil {
		return 0, err
	}
	return 1, nil
}

// ========== Category Workflows ==========

func (b *businessAPIImpl) AddCategory(ctx context.Context, name string) (*domain.Category, error) {
	return b.categories.AddCategory(ctx, name)
}

func (b *businessAPIImpl) RenameCategory(ctx context.Context, id string, name string) (*domain.Category, error) {
	return b.categories.EditCategory(ctx, id, name)
}

func (b *businessAPIImpl) DeleteCategoryCascade(ctx context.Context, id string) (int, error) {
	// 1. Confirm the category exists before touching any tasks
	if _, err := b.categories.GetCategory(ctx, id); err != nil {
		return 0, err
	}

	// 2. Detach tasks first so a later failure cannot leave dangling
	// references to a deleted category
	detached, err := b.tasks.ClearCategory(ctx, id)
	if err != nil {
		return 0, err
	}

	// 3. Delete the category itself
	if err := b.categories.DeleteCategory(ctx, id); err != nil {
		return detached, err
	}

	return detached, nil
}

func (b *businessAPIImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return b.categories.Categories(ctx)
}

// ========== Sales Workflows ==========

func (b *businessAPIImpl) SetSalesGoal(ctx context.Context, value float64) error {
	return b.sales.SetGoal(ctx, value)
}

func (b *businessAPIImpl) RecordSales(ctx context.Context, amount float64) (*services.SalesProgress, error) {
	if _, err := b.sales.AddSales(ctx, amount); err != nil {
		return nil, err
	}
	return b.sales.Progress(ctx)
}

// ========== Query Operations ==========

func (b *businessAPIImpl) ListPendingTasks(ctx context.Context) ([]TaskView, error) {
	pending, err := b.tasks.PendingTasks(ctx)
	if err != nil {
		return nil, err
	}
	return b.toTaskViews(ctx, pending)
}

func (b *businessAPIImpl) GetDashboard(ctx context.Context) (*DashboardData, error) {
	pending, err := b.tasks.PendingTasks(ctx)
	if err != nil {
		return nil, err
	}

	completedToday, err := b.tasks.CompletedToday(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := b.categories.Categories(ctx)
	if err != nil {
		return nil, err
	}

	progress, err := b.sales.Progress(ctx)
	if err != nil {
		return nil, err
	}

	pendingViews, err := b.toTaskViews(ctx, pending)
	if err != nil {
		return nil, err
	}
	completedViews, err := b.toTaskViews(ctx, completedToday)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Pending:        pendingViews,
		CompletedToday: completedViews,
		Progress:       dailyProgress(pendingViews, completedViews),
		Breakdown:      categoryBreakdown(categories, pendingViews, completedViews),
		Categories:     categories,
		Sales:          progress,
	}, nil
}

// dailyProgress summarizes the day's working set: everything still
// pending plus everything completed today.
func dailyProgress(pending, completedToday []TaskView) DailyProgress {
	progress := DailyProgress{
		Completed: len(completedToday),
		Remaining: len(pending),
	}
	progress.Total = progress.Completed + progress.Remaining
	if progress.Total > 0 {
		progress.Percent = float64(progress.Completed) / float64(progress.Total) * 100
	}
	return progress
}

// categoryBreakdown counts the day's working set per category, in the
// category list's order, with an uncategorized bucket last. Categories
// with no tasks are omitted.
func categoryBreakdown(categories []domain.Category, pending, completedToday []TaskView) []CategoryCount {
	counts := make(map[string]*CategoryCount, len(categories)+1)
	order := make([]string, 0, len(categories)+1)
	for _, category := range categories {
		counts[category.ID] = &CategoryCount{CategoryID: category.ID, CategoryName: category.Name}
		order = append(order, category.ID)
	}
	counts[""] = &CategoryCount{CategoryName: "Uncategorized"}
	order = append(order, "")

	tally := func(views []TaskView, completed bool) {
		for _, view := range views {
			count, ok := counts[view.Task.CategoryID]
			if !ok {
				// dangling reference counts as uncategorized
				count = counts[""]
			}
			count.Total++
			if completed {
				count.Completed++
			}
		}
	}
	tally(pending, false)
	tally(completedToday, true)

	breakdown := make([]CategoryCount, 0, len(order))
	for _, id := range order {
		if counts[id].Total > 0 {
			breakdown = append(breakdown, *counts[id])
		}
	}
	return breakdown
}

func (b *businessAPIImpl) GetHistory(ctx context.Context) ([]HistoryDay, error) {
	groups, err := b.tasks.History(ctx)
	if err != nil {
		return nil, err
	}

	history := make([]HistoryDay, 0, len(groups))
	for _, group := range groups {
		views, err := b.toTaskViews(ctx, group.Tasks)
		if err != nil {
			return nil, err
		}
		history = append(history, HistoryDay{Date: group.Date, Tasks: views})
	}
	return history, nil
}

// toTaskViews resolves category names for display. A reference to a
// category that no longer exists renders as uncategorized rather than
// failing the whole view.
func (b *businessAPIImpl) toTaskViews(ctx context.Context, tasks []domain.Task) ([]TaskView, error) {
	categories, err := b.categories.Categories(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, TaskView{
			Task:         task,
			CategoryName: names[task.CategoryID],
		})
	}
	return views, nil
}
