package implementation

import (
	"context"

	"churchhub-be/internal/model"
	"churchhub-be/internal/repository/contract"
	"churchhub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChurchRepositoryImpl struct {
	db *gorm.DB
}

func NewChurchRepository(db *gorm.DB) contract.ChurchRepository {
	return &ChurchRepositoryImpl{db: db}
}

func (r *ChurchRepositoryImpl) applySpecs(ctx context.Context, specs []specification.Specification) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&model.Church{})
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChurchRepositoryImpl) Create(ctx context.Context, church *model.Church) error {
	return r.db.WithContext(ctx).Create(church).Error
}

func (r *ChurchRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*model.Church, error) {
	var church model.Church
	if err := r.applySpecs(ctx, specs).First(&church).Error; err != nil {
		return nil, err
	}
	return &church, nil
}

func (r *ChurchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.Church, error) {
	var churches []*model.Church
	err := r.applySpecs(ctx, specs).Find(&churches).Error
	return churches, err
}

// Deactivate flips is_active then soft-deletes. Two independent statements,
// matching the rest of the pipeline: no shared transaction.
func (r *ChurchRepositoryImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Church{}).
		Where("id = ?", id).
		Update("is_active", false).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.Church{}, "id = ?", id).Error
}

func (r *ChurchRepositoryImpl) GetMemberEmails(ctx context.Context, churchId uuid.UUID) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("church_id = ? AND anonymized = ? AND email <> ''", churchId, false).
		Pluck("email", &emails).Error
	return emails, err
}
