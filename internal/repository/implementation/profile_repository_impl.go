package implementation

import (
	"context"

	"churchhub-be/internal/model"
	"churchhub-be/internal/repository/contract"
	"churchhub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) applySpecs(ctx context.Context, specs []specification.Specification) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&model.Profile{})
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *ProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*model.Profile, error) {
	var profile model.Profile
	if err := r.applySpecs(ctx, specs).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.Profile, error) {
	var profiles []*model.Profile
	err := r.applySpecs(ctx, specs).Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) Anonymize(ctx context.Context, profileId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("id = ?", profileId).
		Updates(map[string]interface{}{
			"first_name": model.AnonymizedName,
			"last_name":  "",
			"email":      "",
			"avatar_url": nil,
			"phone":      nil,
			"address":    nil,
			"anonymized": true,
		}).Error
}

func (r *ProfileRepositoryImpl) DetachFromChurch(ctx context.Context, churchId uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("church_id = ?", churchId).
		Update("church_id", nil)
	return result.RowsAffected, result.Error
}
