// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/defend-your-code/form/internal/domain/entity"
)

// RejectionObserver is notified every time the validator refuses a field.
// Implementations must not fail the validation; errors are theirs to handle.
type RejectionObserver interface {
	OnRejection(rejection *entity.Rejection)
}

// RejectionObserverFunc adapts a plain function to RejectionObserver.
type RejectionObserverFunc func(rejection *entity.Rejection)

// OnRejection calls f(rejection).
func (f RejectionObserverFunc) OnRejection(rejection *entity.Rejection) {
	f(rejection)
}

// RejectionRepository defines the interface for the rejection audit trail.
type RejectionRepository interface {
	// Create stores a rejection.
	Create(ctx context.Context, rejection *entity.Rejection) error

	// FindBySession returns the rejections of a session ordered by creation time.
	FindBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.Rejection, error)

	// CountByField returns how many rejections of a session concern the given field.
	CountByField(ctx context.Context, sessionID uuid.UUID, field entity.Field) (int64, error)
}
