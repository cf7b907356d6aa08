package validation

import (
	"math"
	"strings"
	"time"

	"github.com/kyawhtet1234/GoalFlow/internal/config"
	"github.com/kyawhtet1234/GoalFlow/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidDescriptionLength checks if a task description length is within configured limits
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return v.IsValidStringLength(description, v.DescriptionMinLength(), v.DescriptionMaxLength())
}

// IsPositiveFinite checks if a number is positive and finite
func (v *Validator) IsPositiveFinite(value float64) bool {
	return value > 0 && !math.IsInf(value, 0) && !math.IsNaN(value)
}

// IsValidWeekday checks if a weekday index is within 0=Sunday .. 6=Saturday
func (v *Validator) IsValidWeekday(day time.Weekday) bool {
	return day >= time.Sunday && day <= time.Saturday
}

// IsValidDayKey checks if a string is a well-formed calendar-day key
func (v *Validator) IsValidDayKey(s string) bool {
	_, err := time.Parse(domain.DayKeyFormat, s)
	return err == nil
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// DescriptionMinLength returns the configured minimum description length or default
func (v *Validator) DescriptionMinLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMinLength
	}
	return 3 // Default minimum
}

// DescriptionMaxLength returns the configured maximum description length or default
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 255 // Default maximum
}
