package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryName is returned when the category name is blank.
	ErrInvalidCategoryName = errors.New("invalid category name")

	// ErrInvalidCategoryIcon is returned when the category icon is blank.
	ErrInvalidCategoryIcon = errors.New("invalid category icon")

	// ErrInvalidColorFormat is returned when the category color format is invalid.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrCategoryInUse is returned when a category with transactions cannot be deleted.
	ErrCategoryInUse = errors.New("category has transactions")

	// ErrCategoryTypeLocked is returned when changing the type of a category that has transactions.
	ErrCategoryTypeLocked = errors.New("category type cannot change while transactions reference it")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is the error kind and YYYY is the specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCategoryName   CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryIcon   CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidColorFormat    CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010004"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010005"

	// Not found errors (02XXXX)
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-020001"

	// Referential integrity errors (03XXXX)
	ErrCodeCategoryInUse      CategoryErrorCode = "CAT-030001"
	ErrCodeCategoryTypeLocked CategoryErrorCode = "CAT-030002"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind encoded in the code.
func (e *CategoryError) Kind() Kind {
	return kindFromCode(string(e.Code))
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
