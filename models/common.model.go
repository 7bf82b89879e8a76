package models

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationErrors represents validation error response
type ValidationErrors struct {
	Error  string        `json:"error"`
	Errors []ErrorDetail `json:"errors"`
}

// NewValidationErrors wraps field-level errors in the standard error body.
func NewValidationErrors(errs []ErrorDetail) ValidationErrors {
	return ValidationErrors{
		Error:  "Données invalides",
		Errors: errs,
	}
}
