// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/defend-your-code/form/internal/domain/entity"
)

// ReportWriter defines the interface for publishing a finished transcript.
type ReportWriter interface {
	Write(ctx context.Context, transcript *entity.Transcript) error
}

// Clock abstracts the current time so sessions can be replayed in tests.
type Clock interface {
	Now() time.Time
}
