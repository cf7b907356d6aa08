package api

import (
	"context"
	"time"

	"github.com/kyawhtet1234/GoalFlow/internal/domain"
	"github.com/kyawhtet1234/GoalFlow/internal/services"
)

// Completion messages shown when a task is checked off. One is picked at
// random per completion.
var completionMessages = []string{
	"Great job!",
	"You're on a roll!",
	"One step closer!",
	"Done and dusted!",
	"Awesome!",
}

// View types returned to presentation layers

// TaskView pairs a task with its resolved category name for display.
// CategoryName is empty when the task has no category or the category
// no longer exists.
type TaskView struct {
	Task         domain.Task `json:"task"`
	CategoryName string      `json:"category_name,omitempty"`
}

// CompletionResult reports the outcome of toggling a task. Message is
// set only when the toggle completed the task, not when it reopened it.
type CompletionResult struct {
	Task    *domain.Task `json:"task"`
	Message string       `json:"message,omitempty"`
}

// HistoryDay is one day of completion history for display, newest day
// first across a slice of them.
type HistoryDay struct {
	Date  string     `json:"date"`
	Tasks []TaskView `json:"tasks"`
}

// DailyProgress summarizes today's working set: every pending task plus
// everything completed today.
type DailyProgress struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Remaining int     `json:"remaining"`
	Percent   float64 `json:"percent"`
}

// CategoryCount is one row of the category breakdown. An empty CategoryID
// is the uncategorized bucket.
type CategoryCount struct {
	CategoryID   string `json:"category_id,omitempty"`
	CategoryName string `json:"category_name"`
	Total        int    `json:"total"`
	Completed    int    `json:"completed"`
}

// DashboardData returns everything a single-screen view needs.
type DashboardData struct {
	Pending        []TaskView              `json:"pending"`
	CompletedToday []TaskView              `json:"completed_today"`
	Progress       DailyProgress           `json:"progress"`
	Breakdown      []CategoryCount         `json:"breakdown"`
	Categories     []domain.Category       `json:"categories"`
	Sales          *services.SalesProgress `json:"sales"`
}

// BusinessAPI is the orchestration surface over the stores. Cross-store
// effects (recurring-batch deletes, detaching tasks from a deleted
// category) live here so the stores stay unaware of each other.
type BusinessAPI interface {
	// ========== Task Workflows ==========

	// CreateTask adds a task, or a batch of tasks when the recurrence is
	// daily or weekly. An unknown category identifier is rejected.
	CreateTask(ctx context.Context, description string, deadline *time.Time, categoryID string, recurrence domain.Recurrence) ([]domain.Task, error)

	// CompleteTask toggles a task's completion state
	CompleteTask(ctx context.Context, id string) (*CompletionResult, error)

	// DeleteTaskCascade deletes a task; a recurring task takes its whole
	// batch with it. Returns how many tasks were removed.
	DeleteTaskCascade(ctx context.Context, id string) (int, error)

	// ========== Category Workflows ==========

	// AddCategory creates a new category
	AddCategory(ctx context.Context, name string) (*domain.Category, error)

	// RenameCategory changes an existing category's name
	RenameCategory(ctx context.Context, id string, name string) (*domain.Category, error)

	// DeleteCategoryCascade deletes a category after detaching every task
	// that referenced it. Returns how many tasks were detached.
	DeleteCategoryCascade(ctx context.Context, id string) (int, error)

	// ListCategories returns all categories
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// ========== Sales Workflows ==========

	// SetSalesGoal replaces the daily sales goal
	SetSalesGoal(ctx context.Context, value float64) error

	// RecordSales adds an amount to today's total and returns the
	// updated progress
	RecordSales(ctx context.Context, amount float64) (*services.SalesProgress, error)

	// ========== Query Operations ==========

	// ListPendingTasks returns incomplete tasks in display order
	ListPendingTasks(ctx context.Context) ([]TaskView, error)

	// GetDashboard returns pending tasks, today's completions, daily and
	// per-category progress, the category list and sales progress in one
	// call
	GetDashboard(ctx context.Context) (*DashboardData, error)

	// GetHistory returns completed tasks grouped by day, newest first
	GetHistory(ctx context.Context) ([]HistoryDay, error)
}
