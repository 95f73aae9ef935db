package contract

import (
	"context"

	"churchhub-be/internal/model"
	"churchhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LegalDisagreementRepository interface {
	Create(ctx context.Context, disagreement *model.LegalDisagreement) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*model.LegalDisagreement, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.LegalDisagreement, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ClaimPending atomically advances pending -> processing for one row.
	// Returns false when the row was already claimed by a concurrent run.
	ClaimPending(ctx context.Context, id uuid.UUID) (bool, error)

	// MarkCompleted forces the terminal state and stamps processed_at.
	MarkCompleted(ctx context.Context, id uuid.UUID) error

	// MarkWarningSent stamps warning_sent_at so the warning is never resent.
	MarkWarningSent(ctx context.Context, id uuid.UUID) error
}
