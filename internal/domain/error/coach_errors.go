package error

import "errors"

// Coach gateway errors. Transport failures stay internal: every coach
// operation absorbs them into a fixed fallback string before reaching the
// HTTP layer. Only validation errors surface to the caller.
var (
	// ErrCoachUnavailable is returned when the coach service has no API key configured.
	ErrCoachUnavailable = errors.New("coach service is not configured")

	// ErrCoachEmptyResponse is returned when the model produced no usable text.
	ErrCoachEmptyResponse = errors.New("empty response from coach service")

	// ErrBlankQuestion is returned when a coach question is empty or whitespace.
	ErrBlankQuestion = errors.New("question must not be blank")
)

// CoachErrorCode defines error codes for coach errors.
// Format: CCH-XXYYYY where XX is category and YYYY is specific error.
type CoachErrorCode string

const (
	// Validation errors (01XXXX)
	CoachBlankQuestionCode CoachErrorCode = "CCH-010001"
)

// CoachError represents a coach error with code and message.
type CoachError struct {
	Code    CoachErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CoachError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CoachError) Unwrap() error {
	return e.Err
}

// NewCoachError creates a new CoachError with the given code and message.
func NewCoachError(code CoachErrorCode, message string, err error) *CoachError {
	return &CoachError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
