package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyawhtet1234/GoalFlow/internal/domain"
)

func TestHistoryCommand_Execute(t *testing.T) {
	t.Run("shows completed tasks", func(t *testing.T) {
		app := setupTestApp(t)
		cmd := NewHistoryCommand(app)
		ctx := context.Background()

		created, err := app.businessAPI.CreateTask(ctx, "Buy groceries", nil, "", domain.None())
		require.NoError(t, err)
		_, err = app.businessAPI.CompleteTask(ctx, created[0].ID)
		require.NoError(t, err)

		err = cmd.Execute(ctx, nil)
		assert.NoError(t, err)
	})

	t.Run("handles empty history", func(t *testing.T) {
		app := setupTestApp(t)
		cmd := NewHistoryCommand(app)

		err := cmd.Execute(context.Background(), nil)
		assert.NoError(t, err)
	})
}

func TestSummaryCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	cmd := NewSummaryCommand(app)
	ctx := context.Background()

	created, err := app.businessAPI.CreateTask(ctx, "Buy groceries", nil, "", domain.None())
	require.NoError(t, err)
	_, err = app.businessAPI.CreateTask(ctx, "Send invoices", nil, "work", domain.None())
	require.NoError(t, err)
	_, err = app.businessAPI.CompleteTask(ctx, created[0].ID)
	require.NoError(t, err)
	_, err = app.businessAPI.RecordSales(ctx, 300)
	require.NoError(t, err)

	err = cmd.Execute(ctx, nil)
	assert.NoError(t, err)
}
