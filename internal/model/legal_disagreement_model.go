package model

import (
	"time"

	"github.com/google/uuid"
)

// Document types a member can refuse after a republish.
const (
	DocumentTermsOfService  = "terms_of_service"
	DocumentPrivacyPolicy   = "privacy_policy"
	DocumentDPA             = "dpa"
	DocumentChurchAdminTerm = "church_admin_terms"
)

const (
	DisagreementUserDeletion   = "user_deletion"
	DisagreementChurchDeletion = "church_deletion"
)

// Status is forward-only: pending -> processing -> completed.
const (
	DisagreementStatusPending    = "pending"
	DisagreementStatusProcessing = "processing"
	DisagreementStatusCompleted  = "completed"
)

// LegalDisagreement records a refusal of an updated legal document and the
// scheduled consequence. Rows are never deleted; completed rows remain as an
// audit trail.
type LegalDisagreement struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserId           uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ProfileId        *uuid.UUID `gorm:"type:uuid;index" json:"profile_id,omitempty"`
	ChurchId         *uuid.UUID `gorm:"type:uuid;index" json:"church_id,omitempty"`
	DocumentType     string     `gorm:"type:varchar(50);not null" json:"document_type"`
	DisagreementType string     `gorm:"type:varchar(50);not null;index:idx_legal_disagreements_due,priority:1" json:"disagreement_type"`
	Status           string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_legal_disagreements_due,priority:2" json:"status"`
	DeadlineAt       time.Time  `gorm:"not null;index:idx_legal_disagreements_due,priority:3" json:"deadline_at"`
	WarningSentAt    *time.Time `json:"warning_sent_at,omitempty"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LegalDisagreement) TableName() string {
	return "legal_disagreements"
}
