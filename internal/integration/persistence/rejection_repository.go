// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/defend-your-code/form/internal/application/adapter"
	"github.com/defend-your-code/form/internal/domain/entity"
	"github.com/defend-your-code/form/internal/integration/persistence/model"
)

// rejectionRepository implements the adapter.RejectionRepository interface.
type rejectionRepository struct {
	db *gorm.DB
}

// NewRejectionRepository creates a new rejection repository instance.
func NewRejectionRepository(db *gorm.DB) adapter.RejectionRepository {
	return &rejectionRepository{
		db: db,
	}
}

// Create stores a rejection.
func (r *rejectionRepository) Create(ctx context.Context, rejection *entity.Rejection) error {
	m := model.RejectionFromEntity(rejection)
	result := r.db.WithContext(ctx).Create(m)
	return result.Error
}

// FindBySession returns the rejections of a session ordered by creation time.
func (r *rejectionRepository) FindBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.Rejection, error) {
	var models []model.RejectionModel
	result := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	rejections := make([]*entity.Rejection, len(models))
	for i := range models {
		rejections[i] = models[i].ToEntity()
	}
	return rejections, nil
}

// CountByField returns how many rejections of a session concern the given field.
func (r *rejectionRepository) CountByField(ctx context.Context, sessionID uuid.UUID, field entity.Field) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RejectionModel{}).
		Where("session_id = ? AND field = ?", sessionID, string(field)).
		Count(&count)
	return count, result.Error
}
