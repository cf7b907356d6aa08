package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyawhtet1234/GoalFlow/internal/logging"
	"github.com/kyawhtet1234/GoalFlow/internal/repository/sqlite"
	"github.com/kyawhtet1234/GoalFlow/internal/validation"
)

func setupSalesService(t *testing.T) (SalesGoalService, *fixedTimeService) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	clock := NewFixedTimeService(sunday)
	service := NewSalesGoalService(repo, clock, logging.NewTestLogger(), 1000)
	return service, clock
}

func TestSalesGoalService_Defaults(t *testing.T) {
	// Arrange
	service, _ := setupSalesService(t)
	ctx := context.Background()

	// Act
	progress, err := service.Progress(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1000.0, progress.Goal)
	assert.Zero(t, progress.Total)
	assert.Zero(t, progress.Percent)
}

func TestSalesGoalService_SetGoal(t *testing.T) {
	tests := []struct {
		name           string
		goal           float64
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name: "should accept a positive goal",
			goal: 2500,
		},
		{
			name: "should return validation error for zero goal",
			goal: 0,
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, validation.IsValidationError(err))
			},
		},
		{
			name: "should return validation error for negative goal",
			goal: -50,
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service, _ := setupSalesService(t)
			ctx := context.Background()

			// Act
			err := service.SetGoal(ctx, tt.goal)

			// Assert
			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)

				progress, err := service.Progress(ctx)
				require.NoError(t, err)
				assert.Equal(t, 1000.0, progress.Goal, "failed update should keep the previous goal")
			} else {
				require.NoError(t, err)

				progress, err := service.Progress(ctx)
				require.NoError(t, err)
				assert.Equal(t, tt.goal, progress.Goal)
			}
		})
	}
}

func TestSalesGoalService_AddSales(t *testing.T) {
	// Arrange
	service, _ := setupSalesService(t)
	ctx := context.Background()

	// Act
	first, err := service.AddSales(ctx, 150)
	require.NoError(t, err)
	second, err := service.AddSales(ctx, 100)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 150.0, first.Amount)
	assert.Equal(t, 250.0, second.Amount)
	assert.Equal(t, "2024-06-02", second.Date)

	progress, err := service.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250.0, progress.Total)
	assert.Equal(t, 25.0, progress.Percent)
}

func TestSalesGoalService_AddSales_Validation(t *testing.T) {
	// Arrange
	service, _ := setupSalesService(t)
	ctx := context.Background()

	// Act
	_, err := service.AddSales(ctx, -10)

	// Assert
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))

	progress, perr := service.Progress(ctx)
	require.NoError(t, perr)
	assert.Zero(t, progress.Total, "rejected amount must not accumulate")
}

func TestSalesGoalService_ProgressCapsAtFullGoal(t *testing.T) {
	// Arrange
	service, _ := setupSalesService(t)
	ctx := context.Background()

	_, err := service.AddSales(ctx, 1500)
	require.NoError(t, err)

	// Act
	progress, err := service.Progress(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1500.0, progress.Total)
	assert.Equal(t, 100.0, progress.Percent)
}

func TestSalesGoalService_TotalResetsOnNewDay(t *testing.T) {
	// Arrange: accumulate on Sunday, observe on Monday
	service, clock := setupSalesService(t)
	ctx := context.Background()

	_, err := service.AddSales(ctx, 400)
	require.NoError(t, err)
	require.NoError(t, service.SetGoal(ctx, 2000))

	// Act
	clock.Advance(24 * time.Hour)
	progress, err := service.Progress(ctx)

	// Assert: the total is day-scoped, the goal is not
	require.NoError(t, err)
	assert.Zero(t, progress.Total)
	assert.Equal(t, 2000.0, progress.Goal)
}

func TestSalesGoalService_AddAfterMidnightStartsFresh(t *testing.T) {
	// Arrange
	service, clock := setupSalesService(t)
	ctx := context.Background()

	_, err := service.AddSales(ctx, 400)
	require.NoError(t, err)

	// Act
	clock.Advance(24 * time.Hour)
	sales, err := service.AddSales(ctx, 100)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 100.0, sales.Amount, "yesterday's total must not carry over")
	assert.Equal(t, "2024-06-03", sales.Date)
}

func TestSalesGoalService_PersistenceRoundTrip(t *testing.T) {
	// Arrange: two services sharing one store
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	ctx := context.Background()
	clock := NewFixedTimeService(sunday)

	writer := NewSalesGoalService(repo, clock, logging.NewTestLogger(), 1000)
	require.NoError(t, writer.SetGoal(ctx, 3000))
	_, err = writer.AddSales(ctx, 750)
	require.NoError(t, err)

	// Act
	reader := NewSalesGoalService(repo, clock, logging.NewTestLogger(), 1000)
	require.NoError(t, reader.Load(ctx))
	progress, err := reader.Progress(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3000.0, progress.Goal)
	assert.Equal(t, 750.0, progress.Total)
	assert.Equal(t, 25.0, progress.Percent)
}

func TestSalesGoalService_StaleStoredTotalResetsOnLoad(t *testing.T) {
	// Arrange: a total persisted on an earlier day
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, TodaysSalesKey, `{"amount":900,"date":"2024-05-30"}`))

	clock := NewFixedTimeService(sunday)
	service := NewSalesGoalService(repo, clock, logging.NewTestLogger(), 1000)

	// Act
	require.NoError(t, service.Load(ctx))
	progress, err := service.Progress(ctx)

	// Assert
	require.NoError(t, err)
	assert.Zero(t, progress.Total)

	// The reset is written back so the stale record does not resurface
	value, found, err := repo.Get(ctx, TodaysSalesKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"amount":0,"date":"2024-06-02"}`, value)
}

func TestSalesGoalService_LoadWithCorruptDocuments(t *testing.T) {
	// Arrange
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, SalesGoalKey, "not-a-number"))
	require.NoError(t, repo.Put(ctx, TodaysSalesKey, "{not json"))

	clock := NewFixedTimeService(sunday)
	service := NewSalesGoalService(repo, clock, logging.NewTestLogger(), 1000)

	// Act
	require.NoError(t, service.Load(ctx))
	progress, err := service.Progress(ctx)

	// Assert: corrupt documents degrade to the defaults
	require.NoError(t, err)
	assert.Equal(t, 1000.0, progress.Goal)
	assert.Zero(t, progress.Total)
}
