package validation

// CategoryValidator provides validation for Category-related operations
type CategoryValidator struct {
	validator *Validator
}

// NewCategoryValidator creates a new category validator
func NewCategoryValidator() *CategoryValidator {
	return &CategoryValidator{
		validator: NewValidator(),
	}
}

// ValidateName validates a category name for creation or rename.
// Blank and whitespace-only names are rejected.
func (cv *CategoryValidator) ValidateName(name string) error {
	validationError := NewValidationError()

	trimmed := cv.validator.TrimAndValidateString(name)

	if !cv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("category_name")
		return validationError
	}

	if !cv.validator.IsValidStringLength(trimmed, 1, 255) {
		validationError.AddInvalidLengthError("category_name", trimmed, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateCategoryID validates a category identifier
func (cv *CategoryValidator) ValidateCategoryID(id string) error {
	if !cv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("category_id")
		return validationError
	}
	return nil
}

// GetValidName returns a cleaned category name if valid
func (cv *CategoryValidator) GetValidName(name string) (string, error) {
	if err := cv.ValidateName(name); err != nil {
		return "", err
	}
	return cv.validator.TrimAndValidateString(name), nil
}
