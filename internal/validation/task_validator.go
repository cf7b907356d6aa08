package validation

import (
	"github.com/kyawhtet1234/GoalFlow/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithValidator creates a task validator sharing an existing validator
func NewTaskValidatorWithValidator(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

// ValidateDescription validates a task description for creation
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(description)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("description")
		return validationError
	}

	if !tv.validator.IsValidDescriptionLength(trimmed) {
		validationError.AddInvalidLengthError("description", trimmed,
			tv.validator.DescriptionMinLength(), tv.validator.DescriptionMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateRecurrence validates a recurrence descriptor for creation
func (tv *TaskValidator) ValidateRecurrence(recurrence domain.Recurrence) error {
	validationError := NewValidationError()

	switch recurrence.Type {
	case domain.RecurrenceNone, domain.RecurrenceDaily:
		// No further constraints
	case domain.RecurrenceWeekly:
		if len(recurrence.Days) == 0 {
			validationError.AddInvalidValueError("recurrence", recurrence.Type,
				"weekly recurrence must name at least one weekday")
		}
		for _, day := range recurrence.Days {
			if !tv.validator.IsValidWeekday(day) {
				validationError.AddInvalidValueError("recurrence", int(day),
					"weekday must be between 0 (Sunday) and 6 (Saturday)")
			}
		}
	default:
		validationError.AddInvalidValueError("recurrence", string(recurrence.Type),
			"recurrence type must be none, daily or weekly")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task identifier
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("task_id")
		return validationError
	}
	return nil
}

// GetValidDescription returns a cleaned description if valid
func (tv *TaskValidator) GetValidDescription(description string) (string, error) {
	if err := tv.ValidateDescription(description); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(description), nil
}
