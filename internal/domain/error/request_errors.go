package error

// RequestErrorCode defines error codes raised by the HTTP layer itself.
// Format: REQ-XXYYYY like the entity codes; 04 marks throttling and 05 server faults.
type RequestErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRequestBody RequestErrorCode = "REQ-010001"
	ErrCodeInvalidID          RequestErrorCode = "REQ-010002"
	ErrCodeInvalidQuery       RequestErrorCode = "REQ-010003"

	// Throttling (04XXXX)
	ErrCodeRateLimited RequestErrorCode = "REQ-040001"

	// Server faults (05XXXX)
	ErrCodeInternal           RequestErrorCode = "REQ-050001"
	ErrCodeIntegrityViolation RequestErrorCode = "REQ-050002"
)
