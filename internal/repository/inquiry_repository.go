package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"eduai/internal/model"
)

// InquiryQuery narrows an inquiry listing. An empty AuthorID means every
// author.
type InquiryQuery struct {
	AuthorID       string
	UnansweredOnly bool
}

// InquiryRepository defines inquiry persistence operations.
type InquiryRepository interface {
	List(ctx context.Context, q InquiryQuery) ([]model.Inquiry, error)
	// FindByID returns the inquiry when it is visible under authorID; an
	// empty authorID sees every record.
	FindByID(ctx context.Context, id uint, authorID string) (*model.Inquiry, error)
	Create(ctx context.Context, inquiry *model.Inquiry) error
	Update(ctx context.Context, id uint, title, content string) error
	Reply(ctx context.Context, id uint, reply string, at time.Time) error
	Delete(ctx context.Context, id uint) error
}

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository.
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) scoped(ctx context.Context, authorID string) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&model.Inquiry{})
	if authorID != "" {
		tx = tx.Where("user_id = ?", authorID)
	}
	return tx
}

// List returns the visible inquiries newest first.
func (r *inquiryRepository) List(ctx context.Context, q InquiryQuery) ([]model.Inquiry, error) {
	tx := r.scoped(ctx, q.AuthorID)
	if q.UnansweredOnly {
		tx = tx.Where("status = ?", model.InquiryStatusPending)
	}
	var inquiries []model.Inquiry
	if err := newestFirst(tx).Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

// FindByID finds an inquiry by ID within the author scope.
func (r *inquiryRepository) FindByID(ctx context.Context, id uint, authorID string) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	if err := r.scoped(ctx, authorID).Where("id = ?", id).First(&inquiry).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// Create creates a new inquiry.
func (r *inquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

// Update replaces the title and content of an inquiry.
func (r *inquiryRepository) Update(ctx context.Context, id uint, title, content string) error {
	return r.db.WithContext(ctx).Model(&model.Inquiry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":   title,
			"content": content,
		}).Error
}

// Reply writes the reply, its timestamp and the answered status in one statement.
func (r *inquiryRepository) Reply(ctx context.Context, id uint, reply string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Inquiry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reply":      reply,
			"reply_date": at,
			"status":     model.InquiryStatusAnswered,
		}).Error
}

// Delete removes an inquiry.
func (r *inquiryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Inquiry{}).Error
}
