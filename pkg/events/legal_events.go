package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	LegalDisagreementCreated  = "LEGAL_DISAGREEMENT_CREATED"
	LegalDeletionProcessed    = "LEGAL_DELETION_PROCESSED"
	LegalDeletionWarningSent  = "LEGAL_DELETION_WARNING_SENT"
	LegalDisagreementReversed = "LEGAL_DISAGREEMENT_REVERSED"
)

func NewDisagreementCreated(disagreementId, userId uuid.UUID, documentType, disagreementType string, deadlineAt time.Time) Event {
	return BaseEvent{
		Type: LegalDisagreementCreated,
		Data: map[string]interface{}{
			"disagreement_id":   disagreementId.String(),
			"user_id":           userId.String(),
			"document_type":     documentType,
			"disagreement_type": disagreementType,
			"deadline_at":       deadlineAt.Format(time.RFC3339),
		},
		OccurredAt: time.Now(),
	}
}

func NewDeletionProcessed(disagreementId, userId uuid.UUID, disagreementType string, hadErrors bool) Event {
	return BaseEvent{
		Type: LegalDeletionProcessed,
		Data: map[string]interface{}{
			"disagreement_id":   disagreementId.String(),
			"user_id":           userId.String(),
			"disagreement_type": disagreementType,
			"had_errors":        hadErrors,
		},
		OccurredAt: time.Now(),
	}
}

func NewDeletionWarningSent(disagreementId, userId uuid.UUID, disagreementType string, deadlineAt time.Time, recipients int) Event {
	return BaseEvent{
		Type: LegalDeletionWarningSent,
		Data: map[string]interface{}{
			"disagreement_id":   disagreementId.String(),
			"user_id":           userId.String(),
			"disagreement_type": disagreementType,
			"deadline_at":       deadlineAt.Format(time.RFC3339),
			"recipients":        recipients,
		},
		OccurredAt: time.Now(),
	}
}

func NewDisagreementReversed(disagreementId, userId uuid.UUID, documentType string) Event {
	return BaseEvent{
		Type: LegalDisagreementReversed,
		Data: map[string]interface{}{
			"disagreement_id": disagreementId.String(),
			"user_id":         userId.String(),
			"document_type":   documentType,
		},
		OccurredAt: time.Now(),
	}
}
