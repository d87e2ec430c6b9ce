package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduai/internal/model"
)

// PaymentRepository defines payment intent persistence operations.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.PaymentIntent) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PaymentIntent, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a new payment intent.
func (r *paymentRepository) Create(ctx context.Context, payment *model.PaymentIntent) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// FindByID finds a payment intent by ID.
func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PaymentIntent, error) {
	var payment model.PaymentIntent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}
