// Package valueobject contains value objects for the domain layer.
package valueobject

import (
	domainerror "github.com/defend-your-code/form/internal/domain/error"
)

// Result is the outcome of validating one field: either valid, or invalid
// carrying the reason. The zero value is valid.
type Result struct {
	rejection *domainerror.ValidationError
}

// Valid returns an accepted Result.
func Valid() Result {
	return Result{}
}

// Invalid returns a rejected Result carrying the given reason.
func Invalid(rejection *domainerror.ValidationError) Result {
	return Result{rejection: rejection}
}

// Valid reports whether the field was accepted.
func (r Result) Valid() bool {
	return r.rejection == nil
}

// Reason returns the user-facing rejection message, or "" when valid.
func (r Result) Reason() string {
	if r.rejection == nil {
		return ""
	}
	return r.rejection.Message
}

// Code returns the rejection code, or "" when valid.
func (r Result) Code() domainerror.ValidationErrorCode {
	if r.rejection == nil {
		return ""
	}
	return r.rejection.Code
}

// Err returns the rejection as an error, or nil when valid.
func (r Result) Err() error {
	if r.rejection == nil {
		return nil
	}
	return r.rejection
}

// IsPrecondition reports whether the rejection was caused by a missing
// prerequisite (validating a dependent field too early).
func (r Result) IsPrecondition() bool {
	return r.rejection != nil && r.rejection.IsPrecondition()
}
