package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDisagreementRequest struct {
	DocumentType string     `json:"document_type" validate:"required,oneof=terms_of_service privacy_policy dpa church_admin_terms"`
	ChurchId     *uuid.UUID `json:"church_id,omitempty"`
}

type DisagreementResponse struct {
	Id               uuid.UUID  `json:"id"`
	DocumentType     string     `json:"document_type"`
	DisagreementType string     `json:"disagreement_type"`
	Status           string     `json:"status"`
	DeadlineAt       time.Time  `json:"deadline_at"`
	WarningSentAt    *time.Time `json:"warning_sent_at,omitempty"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
