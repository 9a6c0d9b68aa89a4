// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/defend-your-code/form/internal/domain/entity"
)

// RejectionModel represents the rejections table in the database.
type RejectionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Field     string    `gorm:"type:varchar(32);not null;index"`
	Code      string    `gorm:"type:varchar(16);not null"`
	Message   string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the RejectionModel.
func (RejectionModel) TableName() string {
	return "rejections"
}

// ToEntity converts a RejectionModel to a domain Rejection entity.
func (m *RejectionModel) ToEntity() *entity.Rejection {
	return &entity.Rejection{
		ID:        m.ID,
		SessionID: m.SessionID,
		Field:     entity.Field(m.Field),
		Code:      m.Code,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// RejectionFromEntity creates a RejectionModel from a domain Rejection entity.
func RejectionFromEntity(rejection *entity.Rejection) *RejectionModel {
	return &RejectionModel{
		ID:        rejection.ID,
		SessionID: rejection.SessionID,
		Field:     string(rejection.Field),
		Code:      rejection.Code,
		Message:   rejection.Message,
		CreatedAt: rejection.CreatedAt,
	}
}
