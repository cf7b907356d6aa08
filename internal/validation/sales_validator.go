package validation

// SalesValidator provides validation for sales-goal operations
type SalesValidator struct {
	validator *Validator
}

// NewSalesValidator creates a new sales validator
func NewSalesValidator() *SalesValidator {
	return &SalesValidator{
		validator: NewValidator(),
	}
}

// ValidateGoal validates a sales goal value. The goal must be a positive
// finite number.
func (sv *SalesValidator) ValidateGoal(goal float64) error {
	if !sv.validator.IsPositiveFinite(goal) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("sales_goal", goal, "must be a positive number")
		return validationError
	}
	return nil
}

// ValidateAmount validates a sales amount to record. The amount must be a
// positive finite number.
func (sv *SalesValidator) ValidateAmount(amount float64) error {
	if !sv.validator.IsPositiveFinite(amount) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("sales_amount", amount, "must be a positive number")
		return validationError
	}
	return nil
}
