package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyawhtet1234/GoalFlow/internal/errors"
	"github.com/kyawhtet1234/GoalFlow/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	handler := NewErrorHandler()

	t.Run("renders validation errors with friendly message", func(t *testing.T) {
		validationErr := validation.NewValidationError()
		validationErr.AddRequiredError("description")

		err := handler.Handle("add task", validationErr)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to add task")
		assert.Contains(t, err.Error(), "description")
	})

	t.Run("renders app errors with user message", func(t *testing.T) {
		appErr := errors.NewNotFoundError("task", "task-9")

		err := handler.Handle("delete task", appErr)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete task")
	})

	t.Run("masks storage errors", func(t *testing.T) {
		appErr := errors.NewStorageError("put", fmt.Errorf("disk full"))

		err := handler.HandleSimple(appErr)
		assert.Error(t, err)
		assert.NotContains(t, err.Error(), "disk full")
	})

	t.Run("wraps unknown errors", func(t *testing.T) {
		err := handler.Handle("do something", fmt.Errorf("boom"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to do something")
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestErrorHandler_Classification(t *testing.T) {
	handler := NewErrorHandler()

	validationErr := validation.NewValidationError()
	validationErr.AddRequiredError("name")
	assert.True(t, handler.IsValidationError(validationErr))

	notFound := errors.NewNotFoundError("category", "x")
	assert.True(t, handler.IsNotFoundError(notFound))
	assert.False(t, handler.IsValidationError(notFound))

	storage := errors.NewStorageError("get", fmt.Errorf("locked"))
	assert.True(t, handler.IsStorageError(storage))
	assert.Equal(t, "STORAGE_ERROR", handler.GetErrorCode(storage))
}
