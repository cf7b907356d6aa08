package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryValidator_ValidateName(t *testing.T) {
	tests := []struct {
		name         string
		categoryName string
		expectError  bool
	}{
		{
			name:         "valid name",
			categoryName: "Gym",
			expectError:  false,
		},
		{
			name:         "single character name",
			categoryName: "G",
			expectError:  false,
		},
		{
			name:         "empty name",
			categoryName: "",
			expectError:  true,
		},
		{
			name:         "whitespace-only name",
			categoryName: "   ",
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewCategoryValidator()

			err := validator.ValidateName(tt.categoryName)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryValidator_ValidateCategoryID(t *testing.T) {
	validator := NewCategoryValidator()

	assert.NoError(t, validator.ValidateCategoryID("work"))
	assert.Error(t, validator.ValidateCategoryID(""))
}

func TestCategoryValidator_GetValidName(t *testing.T) {
	validator := NewCategoryValidator()

	cleaned, err := validator.GetValidName("  Gym  ")
	require.NoError(t, err)
	assert.Equal(t, "Gym", cleaned)

	_, err = validator.GetValidName("  ")
	assert.Error(t, err)
}
