// Package error defines domain-specific errors for the form application.
package error

import "errors"

// Validation domain errors.
var (
	// ErrInvalidName is returned when a name contains characters outside the allowed alphabet.
	ErrInvalidName = errors.New("invalid name")

	// ErrNameRequired is returned when a name is empty.
	ErrNameRequired = errors.New("name is required")

	// ErrNameTooLong is returned when a name exceeds the maximum length.
	ErrNameTooLong = errors.New("name too long")

	// ErrInvalidInteger is returned when an integer is malformed or outside the 32-bit range.
	ErrInvalidInteger = errors.New("invalid integer")

	// ErrIntegerOverflow is returned when the sum or product of both integers leaves the 32-bit range.
	ErrIntegerOverflow = errors.New("integer overflow")

	// ErrInvalidFileName is returned when a file name has the wrong extension or reserved characters.
	ErrInvalidFileName = errors.New("invalid file name")

	// ErrPathTraversal is returned when a file name contains a ".." sequence.
	ErrPathTraversal = errors.New("path traversal attempt")

	// ErrFileNotFound is returned when the input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileNotReadable is returned when the input file exists but cannot be read.
	ErrFileNotReadable = errors.New("file not readable")

	// ErrFileAlreadyExists is returned when the output file is already present.
	ErrFileAlreadyExists = errors.New("file already exists")

	// ErrWeakPassword is returned when the password does not meet the strength rules.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrPasswordMismatch is returned when the confirmation does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
)

// Precondition errors. These signal a caller defect, not bad user input.
var (
	// ErrFirstIntegerNotSet is returned when the second integer is validated before the first.
	ErrFirstIntegerNotSet = errors.New("first integer not set")

	// ErrPasswordNotSet is returned when a confirmation is checked before any password was accepted.
	ErrPasswordNotSet = errors.New("password not set")
)

// ValidationErrorCode defines error codes for validation errors.
// Format: VAL-XXYYYY where XX is the field category and YYYY is the specific error.
type ValidationErrorCode string

const (
	// Name errors (01XXXX)
	ErrCodeNameRequired ValidationErrorCode = "VAL-010001"
	ErrCodeNameTooLong  ValidationErrorCode = "VAL-010002"
	ErrCodeInvalidName  ValidationErrorCode = "VAL-010003"

	// Integer errors (02XXXX)
	ErrCodeInvalidInteger  ValidationErrorCode = "VAL-020001"
	ErrCodeIntegerOverflow ValidationErrorCode = "VAL-020002"

	// Input file errors (03XXXX)
	ErrCodeInvalidInputFile ValidationErrorCode = "VAL-030001"
	ErrCodeInputTraversal   ValidationErrorCode = "VAL-030002"
	ErrCodeInputNotFound    ValidationErrorCode = "VAL-030003"
	ErrCodeInputNotReadable ValidationErrorCode = "VAL-030004"

	// Output file errors (04XXXX)
	ErrCodeInvalidOutputFile ValidationErrorCode = "VAL-040001"
	ErrCodeOutputTraversal   ValidationErrorCode = "VAL-040002"
	ErrCodeOutputExists      ValidationErrorCode = "VAL-040003"

	// Password errors (05XXXX)
	ErrCodePasswordTooShort    ValidationErrorCode = "VAL-050001"
	ErrCodePasswordTooLong     ValidationErrorCode = "VAL-050002"
	ErrCodePasswordNoUppercase ValidationErrorCode = "VAL-050003"
	ErrCodePasswordNoLowercase ValidationErrorCode = "VAL-050004"
	ErrCodePasswordNoDigit     ValidationErrorCode = "VAL-050005"
	ErrCodePasswordNoSpecial   ValidationErrorCode = "VAL-050006"
	ErrCodePasswordMismatch    ValidationErrorCode = "VAL-050007"

	// Precondition errors (90XXXX)
	ErrCodeFirstIntegerNotSet ValidationErrorCode = "VAL-900001"
	ErrCodePasswordNotSet     ValidationErrorCode = "VAL-900002"
)

// ValidationError represents a rejected field with code and user-facing message.
type ValidationError struct {
	Code    ValidationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsPrecondition reports whether the error signals a missing prerequisite
// rather than a user input rejection.
func (e *ValidationError) IsPrecondition() bool {
	return errors.Is(e.Err, ErrFirstIntegerNotSet) || errors.Is(e.Err, ErrPasswordNotSet)
}

// NewValidationError creates a new ValidationError with the given code and message.
func NewValidationError(code ValidationErrorCode, message string, err error) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
