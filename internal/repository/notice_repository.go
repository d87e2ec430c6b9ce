package repository

import (
	"context"

	"gorm.io/gorm"

	"eduai/internal/model"
)

// NoticeQuery narrows a notice listing.
type NoticeQuery struct {
	ImportantOnly bool
	Limit         int
}

// NoticeRepository defines notice persistence operations.
type NoticeRepository interface {
	List(ctx context.Context, q NoticeQuery) ([]model.Notice, error)
	FindByID(ctx context.Context, id uint) (*model.Notice, error)
	Create(ctx context.Context, notice *model.Notice) error
	Update(ctx context.Context, id uint, title, content string, important bool) error
	Delete(ctx context.Context, id uint) error
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository creates a new notice repository.
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

// List returns notices newest first.
func (r *noticeRepository) List(ctx context.Context, q NoticeQuery) ([]model.Notice, error) {
	tx := r.db.WithContext(ctx).Model(&model.Notice{})
	if q.ImportantOnly {
		tx = tx.Where("is_important = ?", true)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	var notices []model.Notice
	if err := newestFirst(tx).Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

// FindByID finds a notice by ID.
func (r *noticeRepository) FindByID(ctx context.Context, id uint) (*model.Notice, error) {
	var notice model.Notice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notice).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

// Create creates a new notice.
func (r *noticeRepository) Create(ctx context.Context, notice *model.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

// Update replaces the editable columns of a notice.
func (r *noticeRepository) Update(ctx context.Context, id uint, title, content string, important bool) error {
	return r.db.WithContext(ctx).Model(&model.Notice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":        title,
			"content":      content,
			"is_important": important,
		}).Error
}

// Delete removes a notice.
func (r *noticeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Notice{}).Error
}

// newestFirst applies the listing order shared by every content table.
func newestFirst(tx *gorm.DB) *gorm.DB {
	return tx.Order("created_at DESC").Order("id DESC")
}
