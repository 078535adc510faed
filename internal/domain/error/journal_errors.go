package error

import "errors"

// Journal (entry logging) domain errors.
var (
	// ErrInvalidEntryDate is returned when an entry date is not ISO YYYY-MM-DD.
	ErrInvalidEntryDate = errors.New("invalid entry date")

	// ErrUnknownHabit is returned when toggling a habit that is not in the catalog.
	ErrUnknownHabit = errors.New("unknown habit")

	// ErrUnknownAchievement is returned when unlocking an achievement that is
	// not in the catalog.
	ErrUnknownAchievement = errors.New("unknown achievement")

	// ErrStorageDegraded marks a persisted read or write that was absorbed
	// into a default value. It never crosses the HTTP boundary; usecases use
	// it to report degraded results internally.
	ErrStorageDegraded = errors.New("storage degraded")
)

// JournalErrorCode defines error codes for journal errors.
// Format: JRN-XXYYYY where XX is category and YYYY is specific error.
type JournalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryDate    JournalErrorCode = "JRN-010001"
	ErrCodeMissingEntryFields  JournalErrorCode = "JRN-010002"
	ErrCodeUnknownHabit        JournalErrorCode = "JRN-010003"
	ErrCodeUnknownAchievement  JournalErrorCode = "JRN-010004"
)

// JournalError represents a journal error with code and message.
type JournalError struct {
	Code    JournalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *JournalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *JournalError) Unwrap() error {
	return e.Err
}

// NewJournalError creates a new JournalError with the given code and message.
func NewJournalError(code JournalErrorCode, message string, err error) *JournalError {
	return &JournalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
