// Package audit records validation rejections in the log and, optionally, in
// the audit database.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/defend-your-code/form/internal/application/adapter"
	"github.com/defend-your-code/form/internal/domain/entity"
)

// DefaultWriteTimeout bounds a single audit insert.
const DefaultWriteTimeout = 2 * time.Second

// LogObserver writes each rejection as a structured log record.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates a new LogObserver. A nil logger uses slog.Default().
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

// OnRejection logs the rejection at info level.
func (o *LogObserver) OnRejection(rejection *entity.Rejection) {
	o.logger.Info("Field rejected",
		"sessionID", rejection.SessionID.String(),
		"field", string(rejection.Field),
		"code", rejection.Code,
		"reason", rejection.Message,
	)
}

// RepositoryObserver persists each rejection. Failures are logged and never
// reach the validator.
type RepositoryObserver struct {
	repo    adapter.RejectionRepository
	timeout time.Duration
}

// NewRepositoryObserver creates a new RepositoryObserver.
func NewRepositoryObserver(repo adapter.RejectionRepository, timeout time.Duration) *RepositoryObserver {
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	return &RepositoryObserver{
		repo:    repo,
		timeout: timeout,
	}
}

// OnRejection stores the rejection.
func (o *RepositoryObserver) OnRejection(rejection *entity.Rejection) {
	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	if err := o.repo.Create(ctx, rejection); err != nil {
		slog.Error("Failed to store rejection",
			"error", err,
			"sessionID", rejection.SessionID.String(),
			"field", string(rejection.Field),
		)
	}
}

// MultiObserver fans a rejection out to several observers in order.
type MultiObserver []adapter.RejectionObserver

// NewMultiObserver creates a MultiObserver, skipping nil observers.
func NewMultiObserver(observers ...adapter.RejectionObserver) MultiObserver {
	m := make(MultiObserver, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

// OnRejection notifies every observer.
func (m MultiObserver) OnRejection(rejection *entity.Rejection) {
	for _, o := range m {
		o.OnRejection(rejection)
	}
}

var (
	_ adapter.RejectionObserver = (*LogObserver)(nil)
	_ adapter.RejectionObserver = (*RepositoryObserver)(nil)
	_ adapter.RejectionObserver = MultiObserver(nil)
)
