package contract

import (
	"context"

	"churchhub-be/internal/model"
	"churchhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChurchRepository interface {
	Create(ctx context.Context, church *model.Church) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*model.Church, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.Church, error)

	// Deactivate soft-deletes the tenant and flips is_active.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// GetMemberEmails resolves the warning recipient list for a tenant,
	// skipping already-anonymized profiles.
	GetMemberEmails(ctx context.Context, churchId uuid.UUID) ([]string, error)
}
