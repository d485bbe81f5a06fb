package error

import "errors"

// Budget domain errors.
var (
	// ErrInvalidPeriod is returned when a period ends before it starts.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidDateFormat is returned when a period bound cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// BudgetErrorCode defines error codes for budget aggregation errors.
// Format: BUD-XXYYYY where XX is the error kind and YYYY is the specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod     BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidDateFormat BudgetErrorCode = "BUD-010002"
	ErrCodeMissingPeriod     BudgetErrorCode = "BUD-010003"
)

// BudgetError represents a budget aggregation error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind encoded in the code.
func (e *BudgetError) Kind() Kind {
	return kindFromCode(string(e.Code))
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
