package model

import "time"

// AuditKind classifies an audit entry.
type AuditKind string

const (
	AuditEntitlementSet AuditKind = "entitlement.set"
	AuditPlanApplied    AuditKind = "plan.applied"
	AuditPlanFeatures   AuditKind = "plan.features"
	AuditPaymentCreated AuditKind = "payment.created"
	AuditAccountDeleted AuditKind = "account.deleted"
)

// AuditEvent records a privileged write, successful or not.
type AuditEvent struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Kind         AuditKind `json:"kind" gorm:"type:varchar(40);not null;index"`
	ActorID      string    `json:"actor_id" gorm:"type:char(36);index"`
	SubjectID    string    `json:"subject_id" gorm:"size:64;index"`
	Detail       string    `json:"detail" gorm:"type:text"`
	ErrorMessage string    `json:"error_message,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
}
