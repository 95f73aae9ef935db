package implementation

import (
	"context"
	"time"

	"churchhub-be/internal/model"
	"churchhub-be/internal/repository/contract"
	"churchhub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LegalDisagreementRepositoryImpl struct {
	db *gorm.DB
}

func NewLegalDisagreementRepository(db *gorm.DB) contract.LegalDisagreementRepository {
	return &LegalDisagreementRepositoryImpl{db: db}
}

func (r *LegalDisagreementRepositoryImpl) applySpecs(ctx context.Context, specs []specification.Specification) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&model.LegalDisagreement{})
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LegalDisagreementRepositoryImpl) Create(ctx context.Context, disagreement *model.LegalDisagreement) error {
	return r.db.WithContext(ctx).Create(disagreement).Error
}

func (r *LegalDisagreementRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*model.LegalDisagreement, error) {
	var disagreement model.LegalDisagreement
	if err := r.applySpecs(ctx, specs).First(&disagreement).Error; err != nil {
		return nil, err
	}
	return &disagreement, nil
}

func (r *LegalDisagreementRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.LegalDisagreement, error) {
	var disagreements []*model.LegalDisagreement
	err := r.applySpecs(ctx, specs).Find(&disagreements).Error
	return disagreements, err
}

func (r *LegalDisagreementRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	err := r.applySpecs(ctx, specs).Count(&count).Error
	return count, err
}

func (r *LegalDisagreementRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LegalDisagreement{}, "id = ?", id).Error
}

// ClaimPending is the atomic claim step: a conditional update guarded on the
// pending status. Two overlapping cron runs cannot both claim the same row;
// the loser sees RowsAffected == 0.
func (r *LegalDisagreementRepositoryImpl) ClaimPending(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.LegalDisagreement{}).
		Where("id = ? AND status = ?", id, model.DisagreementStatusPending).
		Update("status", model.DisagreementStatusProcessing)

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *LegalDisagreementRepositoryImpl) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.LegalDisagreement{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       model.DisagreementStatusCompleted,
			"processed_at": now,
		}).Error
}

func (r *LegalDisagreementRepositoryImpl) MarkWarningSent(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.LegalDisagreement{}).
		Where("id = ? AND warning_sent_at IS NULL", id).
		Update("warning_sent_at", now).Error
}
