package specification

import (
	"time"

	"gorm.io/gorm"
)

// ByStatus filters disagreements by lifecycle status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByDisagreementType keys the two pipelines (user vs church)
type ByDisagreementType struct {
	Type string
}

func (s ByDisagreementType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("disagreement_type = ?", s.Type)
}

// ByDocumentType filters by the refused document
type ByDocumentType struct {
	DocumentType string
}

func (s ByDocumentType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_type = ?", s.DocumentType)
}

// DeadlinePassed selects rows whose consequence is due
type DeadlinePassed struct {
	Now time.Time
}

func (s DeadlinePassed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deadline_at < ?", s.Now)
}

// DeadlineWithin selects rows approaching their deadline: still in the future
// but at or inside the warning window.
type DeadlineWithin struct {
	Now    time.Time
	Window time.Duration
}

func (s DeadlineWithin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deadline_at > ? AND deadline_at <= ?", s.Now, s.Now.Add(s.Window))
}

// WarningNotSent excludes rows already warned
type WarningNotSent struct{}

func (s WarningNotSent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("warning_sent_at IS NULL")
}
