package model

import "time"

// Notice is an announcement posted by an administrator.
type Notice struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	IsImportant bool      `json:"is_important" gorm:"not null;index"`
	UserID      *string   `json:"user_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InquiryStatus tracks whether an administrator has answered.
type InquiryStatus string

const (
	InquiryStatusPending  InquiryStatus = "pending"
	InquiryStatusAnswered InquiryStatus = "answered"
)

// Inquiry is a support ticket. Reply and ReplyDate are set together.
type Inquiry struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	UserID    string        `json:"user_id" gorm:"type:char(36);not null;index"`
	Title     string        `json:"title" gorm:"size:255;not null"`
	Content   string        `json:"content" gorm:"type:text;not null"`
	Status    InquiryStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Reply     *string       `json:"reply" gorm:"type:text"`
	ReplyDate *time.Time    `json:"reply_date"`
	CreatedAt time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Answered reports whether the inquiry carries a reply.
func (i *Inquiry) Answered() bool {
	return i.Reply != nil && *i.Reply != ""
}

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user testimonial.
type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"type:char(36);not null;index"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Content      string    `json:"content" gorm:"type:text;not null"`
	Rating       int       `json:"rating" gorm:"not null"`
	Region       *string   `json:"region" gorm:"size:100"`
	Organization *string   `json:"organization" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time `json:"updated_at"`
}
