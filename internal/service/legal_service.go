package service

import (
	"context"
	"errors"
	"time"

	"churchhub-be/internal/dto"
	"churchhub-be/internal/model"
	"churchhub-be/internal/pkg/logger"
	"churchhub-be/internal/repository/contract"
	"churchhub-be/internal/repository/specification"
	"churchhub-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDisagreementExists     = errors.New("disagreement already recorded for this document")
	ErrDisagreementNotFound   = errors.New("disagreement not found")
	ErrDisagreementNotPending = errors.New("disagreement is no longer pending")
	ErrChurchRequired         = errors.New("church_id is required for church admin terms")
	ErrNotChurchOwner         = errors.New("only the church owner can disagree with admin terms")
	ErrUnknownDocumentType    = errors.New("unknown document type")
)

type ILegalService interface {
	CreateDisagreement(ctx context.Context, userId uuid.UUID, req *dto.CreateDisagreementRequest) (*dto.DisagreementResponse, error)
	WithdrawDisagreement(ctx context.Context, userId, disagreementId uuid.UUID) error
	GetDisagreements(ctx context.Context, userId uuid.UUID) ([]*dto.DisagreementResponse, error)
}

type LegalPolicy struct {
	UserDeletionDelay   time.Duration
	ChurchDeletionDelay time.Duration
}

type legalService struct {
	disagreements contract.LegalDisagreementRepository
	profiles      contract.ProfileRepository
	churches      contract.ChurchRepository
	publisher     IEventPublisher
	logger        logger.ILogger
	policy        LegalPolicy
}

func NewLegalService(
	disagreements contract.LegalDisagreementRepository,
	profiles contract.ProfileRepository,
	churches contract.ChurchRepository,
	publisher IEventPublisher,
	log logger.ILogger,
	policy LegalPolicy,
) ILegalService {
	return &legalService{
		disagreements: disagreements,
		profiles:      profiles,
		churches:      churches,
		publisher:     publisher,
		logger:        log,
		policy:        policy,
	}
}

func (s *legalService) CreateDisagreement(ctx context.Context, userId uuid.UUID, req *dto.CreateDisagreementRequest) (*dto.DisagreementResponse, error) {
	disagreementType, err := disagreementTypeFor(req.DocumentType)
	if err != nil {
		return nil, err
	}

	// One pending disagreement per document type per user.
	existing, err := s.disagreements.Count(ctx,
		specification.ByUserID{UserID: userId},
		specification.ByDocumentType{DocumentType: req.DocumentType},
		specification.ByStatus{Status: model.DisagreementStatusPending},
	)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrDisagreementExists
	}

	profile, err := s.profiles.FindOne(ctx, specification.ByUserID{UserID: userId})
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	disagreement := &model.LegalDisagreement{
		Id:               uuid.New(),
		UserId:           userId,
		DocumentType:     req.DocumentType,
		DisagreementType: disagreementType,
		Status:           model.DisagreementStatusPending,
	}
	if profile != nil {
		disagreement.ProfileId = &profile.Id
	}

	switch disagreementType {
	case model.DisagreementChurchDeletion:
		if req.ChurchId == nil {
			return nil, ErrChurchRequired
		}
		church, err := s.churches.FindOne(ctx, specification.ByID{ID: *req.ChurchId})
		if err != nil {
			return nil, err
		}
		if profile == nil || church.OwnerProfileId != profile.Id {
			return nil, ErrNotChurchOwner
		}
		disagreement.ChurchId = req.ChurchId
		disagreement.DeadlineAt = time.Now().Add(s.policy.ChurchDeletionDelay)
	default:
		disagreement.DeadlineAt = time.Now().Add(s.policy.UserDeletionDelay)
	}

	if err := s.disagreements.Create(ctx, disagreement); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := events.NewDisagreementCreated(disagreement.Id, userId, disagreement.DocumentType, disagreement.DisagreementType, disagreement.DeadlineAt)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("LegalService", "Failed to publish disagreement event", map[string]interface{}{
				"disagreement_id": disagreement.Id,
				"error":           err.Error(),
			})
		}
	}

	return toDisagreementResponse(disagreement), nil
}

// WithdrawDisagreement removes a still-pending disagreement: the member has
// re-accepted the document, so no consequence remains to audit.
func (s *legalService) WithdrawDisagreement(ctx context.Context, userId, disagreementId uuid.UUID) error {
	disagreement, err := s.disagreements.FindOne(ctx,
		specification.ByID{ID: disagreementId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDisagreementNotFound
		}
		return err
	}

	if disagreement.Status != model.DisagreementStatusPending {
		// Already claimed or done; the pipeline owns it now.
		return ErrDisagreementNotPending
	}

	if err := s.disagreements.Delete(ctx, disagreementId); err != nil {
		return err
	}

	if s.publisher != nil {
		event := events.NewDisagreementReversed(disagreementId, userId, disagreement.DocumentType)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("LegalService", "Failed to publish reversal event", map[string]interface{}{
				"disagreement_id": disagreementId,
				"error":           err.Error(),
			})
		}
	}

	return nil
}

func (s *legalService) GetDisagreements(ctx context.Context, userId uuid.UUID) ([]*dto.DisagreementResponse, error) {
	disagreements, err := s.disagreements.FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DisagreementResponse, 0, len(disagreements))
	for _, d := range disagreements {
		responses = append(responses, toDisagreementResponse(d))
	}
	return responses, nil
}

func disagreementTypeFor(documentType string) (string, error) {
	switch documentType {
	case model.DocumentTermsOfService, model.DocumentPrivacyPolicy, model.DocumentDPA:
		return model.DisagreementUserDeletion, nil
	case model.DocumentChurchAdminTerm:
		return model.DisagreementChurchDeletion, nil
	default:
		return "", ErrUnknownDocumentType
	}
}

func toDisagreementResponse(d *model.LegalDisagreement) *dto.DisagreementResponse {
	return &dto.DisagreementResponse{
		Id:               d.Id,
		DocumentType:     d.DocumentType,
		DisagreementType: d.DisagreementType,
		Status:           d.Status,
		DeadlineAt:       d.DeadlineAt,
		WarningSentAt:    d.WarningSentAt,
		ProcessedAt:      d.ProcessedAt,
		CreatedAt:        d.CreatedAt,
	}
}
