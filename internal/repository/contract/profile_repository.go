package contract

import (
	"context"

	"churchhub-be/internal/model"
	"churchhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, profile *model.Profile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*model.Profile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.Profile, error)

	// Anonymize scrubs PII in place: names to the fixed placeholder,
	// avatar/phone/address nulled. The row itself survives for referential
	// integrity of historic data.
	Anonymize(ctx context.Context, profileId uuid.UUID) error

	// DetachFromChurch clears church membership for every profile of a tenant.
	DetachFromChurch(ctx context.Context, churchId uuid.UUID) (int64, error)
}
