// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Question is a single prompt shown to the user.
type Question struct {
	Message string
	// Default is shown with the question; the caller substitutes it for an empty answer.
	Default string
	// Secret answers are read without echo.
	Secret bool
}

// Prompter defines the interface for the interactive front end.
type Prompter interface {
	// Ask shows the question and returns the raw answer.
	// It returns io.EOF when the input stream is closed.
	Ask(ctx context.Context, question Question) (string, error)

	// Reject tells the user why the previous answer was refused.
	Reject(ctx context.Context, reason string) error
}
