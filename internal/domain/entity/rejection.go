// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rejection records one refused field value. Message never quotes the
// refused input.
type Rejection struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Field     Field
	Code      string
	Message   string
	CreatedAt time.Time
}

// NewRejection creates a new Rejection stamped with the current time.
func NewRejection(sessionID uuid.UUID, field Field, code, message string) *Rejection {
	return &Rejection{
		ID:        uuid.New(),
		SessionID: sessionID,
		Field:     field,
		Code:      code,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}
