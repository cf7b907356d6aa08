package services

import (
	"context"
	"time"

	"github.com/kyawhtet1234/GoalFlow/internal/domain"
)

// Storage keys for the key-value record store. Each key holds one
// JSON-encoded document, rewritten whole on every mutation.
const (
	TasksKey       = "goalflow-tasks"
	CategoriesKey  = "goalflow-categories"
	SalesGoalKey   = "goalflow-sales-goal"
	TodaysSalesKey = "goalflow-todays-sales"
)

// HistoryGroup is one day of completion history. Groups are returned
// newest-day-first and tasks within a group newest-completed-first.
type HistoryGroup struct {
	Date  string        `json:"date"` // calendar-day key, "YYYY-MM-DD"
	Tasks []domain.Task `json:"tasks"`
}

// SalesProgress describes the sales goal and today's running total.
type SalesProgress struct {
	Goal    float64 `json:"goal"`
	Total   float64 `json:"total"`
	Percent float64 `json:"percent"`
}

// TimeService is the shared current-calendar-day capability. All
// day-boundary logic (history grouping, sales reset, deadline handling)
// goes through it so tests can inject a fixed clock.
type TimeService interface {
	Now() time.Time
	Today() time.Time
	IsSameDay(a, b time.Time) bool
	IsToday(t time.Time) bool
	DayKey(t time.Time) string
	TodayKey() string
}

// IDGenerator produces opaque unique identifiers for tasks, categories and
// recurrence batches. Injectable so tests are deterministic.
type IDGenerator interface {
	NewID() string
}

// TaskService owns the task collection and the recurrence-expansion rules.
// It is self-contained and unaware of the other stores; cross-store
// effects live in the api package.
type TaskService interface {
	// Lifecycle
	Load(ctx context.Context) error
	IsLoaded() bool

	// Mutations
	CreateTask(ctx context.Context, description string, deadline *time.Time, categoryID string, recurrence domain.Recurrence) ([]domain.Task, error)
	ToggleCompletion(ctx context.Context, id string) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	DeleteBatch(ctx context.Context, recurrenceID string) (int, error)
	ClearCategory(ctx context.Context, categoryID string) (int, error)

	// Queries
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	AllTasks(ctx context.Context) ([]domain.Task, error)
	PendingTasks(ctx context.Context) ([]domain.Task, error)
	CompletedToday(ctx context.Context) ([]domain.Task, error)
	History(ctx context.Context) ([]HistoryGroup, error)
}

// CategoryService owns the category collection.
type CategoryService interface {
	// Lifecycle
	Load(ctx context.Context) error
	IsLoaded() bool

	// Mutations
	AddCategory(ctx context.Context, name string) (*domain.Category, error)
	EditCategory(ctx context.Context, id string, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// Queries
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// SalesGoalService owns the daily goal and the day-scoped running total.
// The total lazily resets the first time it is observed on a new calendar
// day; there is no background timer.
type SalesGoalService interface {
	// Lifecycle
	Load(ctx context.Context) error
	IsLoaded() bool

	// Mutations
	SetGoal(ctx context.Context, value float64) error
	AddSales(ctx context.Context, amount float64) (domain.DailySales, error)

	// Queries
	Progress(ctx context.Context) (*SalesProgress, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TimeService      TimeService
	TaskService      TaskService
	CategoryService  CategoryService
	SalesGoalService SalesGoalService
}
