// Package error defines domain-specific errors for the weight loss tracker.
package error

import "errors"

// Profile and onboarding domain errors.
var (
	// ErrProfileNotFound is returned when no profile has been saved yet.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrTargetNotBelowCurrent is returned when the onboarding target weight
	// is not below the current weight. Enforced at onboarding input only.
	ErrTargetNotBelowCurrent = errors.New("target weight must be below current weight")

	// ErrInvalidActivityLevel is returned for an unrecognized activity level.
	ErrInvalidActivityLevel = errors.New("invalid activity level")

	// ErrInvalidGender is returned for an unrecognized gender value.
	ErrInvalidGender = errors.New("invalid gender")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProfileNotFound       ProfileErrorCode = "PRF-010001"
	ErrCodeTargetNotBelowCurrent ProfileErrorCode = "PRF-010002"
	ErrCodeInvalidActivityLevel  ProfileErrorCode = "PRF-010003"
	ErrCodeInvalidGender         ProfileErrorCode = "PRF-010004"
	ErrCodeMissingProfileFields  ProfileErrorCode = "PRF-010005"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
