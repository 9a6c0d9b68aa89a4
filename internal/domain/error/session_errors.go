// Package error defines domain-specific errors for the form application.
package error

import "errors"

// Session domain errors.
var (
	// ErrSessionAborted is returned when the user closes the input stream before the form is complete.
	ErrSessionAborted = errors.New("session aborted before the form was completed")

	// ErrSessionIncomplete is returned when a transcript is requested for a session missing accepted fields.
	ErrSessionIncomplete = errors.New("session is missing accepted fields")

	// ErrUnknownOutputMode is returned when the configured output mode is not supported.
	ErrUnknownOutputMode = errors.New("unknown output mode")

	// ErrUnknownPasswordHasher is returned when the configured password hasher is not supported.
	ErrUnknownPasswordHasher = errors.New("unknown password hasher")
)
