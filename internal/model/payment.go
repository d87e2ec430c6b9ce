package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentStatus represents the status of a payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
)

// Supported payment methods.
const (
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodVirtual      = "virtual_account"
)

// PaymentIntent records a customer's intention to pay. Settlement happens
// outside this service.
type PaymentIntent struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID         string          `json:"user_id" gorm:"type:char(36);not null;index"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	PaymentMethod  string          `json:"payment_method" gorm:"type:varchar(30);not null"`
	PaymentDetails datatypes.JSON  `json:"payment_details" gorm:"type:json"`
	Status         PaymentStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TableName keeps the historical table name.
func (PaymentIntent) TableName() string {
	return "payments"
}

// BeforeCreate sets UUID before creating the record.
func (p *PaymentIntent) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
