package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "abc-123")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: abc-123" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "task not found: abc-123")
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "task" {
		t.Errorf("NewNotFoundError should set resource context")
	}

	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "abc-123" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("save tasks", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Message != "storage operation failed: save tasks" {
		t.Errorf("NewStorageError message = %v, want %v", err.Message, "storage operation failed: save tasks")
	}
	if err.Code != "STORAGE_ERROR" {
		t.Errorf("NewStorageError code = %v, want %v", err.Code, "STORAGE_ERROR")
	}
	if err.Cause != cause {
		t.Errorf("NewStorageError cause = %v, want %v", err.Cause, cause)
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "save tasks" {
		t.Errorf("NewStorageError should set operation context")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("amount", -5.0, "must be positive")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for amount: must be positive" {
		t.Errorf("NewInvalidInputError message = %v, want %v", err.Message, "invalid input for amount: must be positive")
	}
	if err.Code != "INVALID_INPUT" {
		t.Errorf("NewInvalidInputError code = %v, want %v", err.Code, "INVALID_INPUT")
	}

	field, ok := err.GetContext("field")
	if !ok || field != "amount" {
		t.Errorf("NewInvalidInputError should set field context")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("underlying failure")
	err := WrapError(cause, ErrorTypeStorage, "could not persist categories")

	if err.Type != ErrorTypeStorage {
		t.Errorf("WrapError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
	if !errors.Is(err, err) {
		t.Errorf("WrapError should match itself via errors.Is")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("WrapError should unwrap to the cause")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NewValidationError("bad input", nil)
	plainErr := errors.New("plain error")
	wrappedErr := fmt.Errorf("wrapped: %w", appErr)

	if !IsAppError(appErr) {
		t.Errorf("IsAppError should return true for AppError")
	}
	if IsAppError(plainErr) {
		t.Errorf("IsAppError should return false for plain error")
	}
	if !IsAppError(wrappedErr) {
		t.Errorf("IsAppError should return true for wrapped AppError")
	}
}

func TestIsErrorType(t *testing.T) {
	notFound := NewNotFoundError("category", "gym")

	if !IsErrorType(notFound, ErrorTypeNotFound) {
		t.Errorf("IsErrorType should match NotFound")
	}
	if IsErrorType(notFound, ErrorTypeStorage) {
		t.Errorf("IsErrorType should not match Storage for a NotFound error")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeNotFound) {
		t.Errorf("IsErrorType should return false for plain errors")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation error returns message",
			err:      NewValidationError("description is too short", nil),
			expected: "description is too short",
		},
		{
			name:     "not found error returns message",
			err:      NewNotFoundError("task", "42"),
			expected: "task not found: 42",
		},
		{
			name:     "storage error is masked",
			err:      NewStorageError("save", errors.New("io error")),
			expected: "A storage error occurred. Your changes are kept for this session.",
		},
		{
			name:     "plain error passes through",
			err:      errors.New("something odd"),
			expected: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(NewStorageError("save", nil)); code != "STORAGE_ERROR" {
		t.Errorf("GetErrorCode() = %v, want STORAGE_ERROR", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN_ERROR", code)
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"validation errors are not logged", NewValidationError("bad", nil), false},
		{"not found errors are not logged", NewNotFoundError("task", "1"), false},
		{"invalid input errors are not logged", NewInvalidInputError("goal", 0, "zero"), false},
		{"storage errors are logged", NewStorageError("load", errors.New("corrupt")), true},
		{"unknown errors are logged", errors.New("plain"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogError(tt.err); got != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
