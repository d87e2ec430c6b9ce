package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plan is a named subscription tier. Plans are reference data; the service
// never mutates them at runtime.
type Plan struct {
	ID          string    `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	SortOrder   int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PlanFeature is the entitlement template of one plan.
type PlanFeature struct {
	PlanID    string    `json:"plan_id" gorm:"type:char(36);primaryKey"`
	Features  Features  `json:"features" gorm:"embedded"`
	UpdatedAt time.Time `json:"updated_at"`

	Plan Plan `json:"-" gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}
