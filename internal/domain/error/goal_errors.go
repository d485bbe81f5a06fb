package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalTitle is returned when the goal title is blank.
	ErrInvalidGoalTitle = errors.New("invalid goal title")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidCurrentAmount is returned when the current amount is negative.
	ErrInvalidCurrentAmount = errors.New("invalid current amount")

	// ErrCurrentExceedsTarget is returned when a new goal starts above its target.
	ErrCurrentExceedsTarget = errors.New("current amount exceeds target amount")

	// ErrInvalidDeadline is returned when the deadline is not after today.
	ErrInvalidDeadline = errors.New("invalid deadline")

	// ErrInvalidContribution is returned when an added amount is zero or negative.
	ErrInvalidContribution = errors.New("invalid contribution amount")

	// ErrGoalAlreadyCompleted is returned when adding to a completed goal.
	ErrGoalAlreadyCompleted = errors.New("goal already completed")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is the error kind and YYYY is the specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoalTitle     GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount  GoalErrorCode = "GOL-010002"
	ErrCodeInvalidCurrentAmount GoalErrorCode = "GOL-010003"
	ErrCodeCurrentExceedsTarget GoalErrorCode = "GOL-010004"
	ErrCodeInvalidDeadline      GoalErrorCode = "GOL-010005"
	ErrCodeInvalidContribution  GoalErrorCode = "GOL-010006"
	ErrCodeGoalAlreadyCompleted GoalErrorCode = "GOL-010007"
	ErrCodeMissingGoalFields    GoalErrorCode = "GOL-010008"

	// Not found errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind encoded in the code.
func (e *GoalError) Kind() Kind {
	return kindFromCode(string(e.Code))
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
