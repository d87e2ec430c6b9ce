package repository

import (
	"context"

	"gorm.io/gorm"

	"eduai/internal/model"
)

// AuditRepository defines audit log persistence operations.
type AuditRepository interface {
	Create(ctx context.Context, event *model.AuditEvent) error
	CreateBatch(ctx context.Context, events []model.AuditEvent) error
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Create creates a single audit entry.
func (r *auditRepository) Create(ctx context.Context, event *model.AuditEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// CreateBatch creates multiple audit entries in one round trip.
func (r *auditRepository) CreateBatch(ctx context.Context, events []model.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(events, 100).Error
}
