package repository

import (
	"context"

	"gorm.io/gorm"

	"eduai/internal/model"
)

// ReviewQuery narrows a review listing.
type ReviewQuery struct {
	AuthorID string
	Limit    int
}

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	List(ctx context.Context, q ReviewQuery) ([]model.Review, error)
	FindByID(ctx context.Context, id uint) (*model.Review, error)
	Create(ctx context.Context, review *model.Review) error
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// List returns reviews newest first.
func (r *reviewRepository) List(ctx context.Context, q ReviewQuery) ([]model.Review, error) {
	tx := r.db.WithContext(ctx).Model(&model.Review{})
	if q.AuthorID != "" {
		tx = tx.Where("user_id = ?", q.AuthorID)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	var reviews []model.Review
	if err := newestFirst(tx).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByID finds a review by ID.
func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Create creates a new review.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// Update writes the editable columns of a review, including NULLs.
func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"title":        review.Title,
			"content":      review.Content,
			"rating":       review.Rating,
			"region":       review.Region,
			"organization": review.Organization,
		}).Error
}

// Delete removes a review.
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Review{}).Error
}
