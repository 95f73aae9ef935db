package service

import (
	"context"
	"time"

	"churchhub-be/internal/dto"
	"churchhub-be/internal/model"
	"churchhub-be/internal/pkg/identity"
	"churchhub-be/internal/pkg/logger"
	"churchhub-be/internal/repository/contract"
	"churchhub-be/internal/repository/specification"
	"churchhub-be/pkg/events"
)

// IDeletionService executes the scheduled consequence of expired legal
// disagreements. Runs never return an error: every failure mode collapses
// into the counts, and the caller decides what to log.
type IDeletionService interface {
	ProcessUserDeletions(ctx context.Context) *dto.DeletionResult
	ProcessChurchDeletions(ctx context.Context) *dto.DeletionResult
}

type deletionService struct {
	disagreements contract.LegalDisagreementRepository
	profiles      contract.ProfileRepository
	churches      contract.ChurchRepository
	identity      identity.Deleter
	publisher     IEventPublisher
	logger        logger.ILogger
}

func NewDeletionService(
	disagreements contract.LegalDisagreementRepository,
	profiles contract.ProfileRepository,
	churches contract.ChurchRepository,
	identityClient identity.Deleter,
	publisher IEventPublisher,
	log logger.ILogger,
) IDeletionService {
	return &deletionService{
		disagreements: disagreements,
		profiles:      profiles,
		churches:      churches,
		identity:      identityClient,
		publisher:     publisher,
		logger:        log,
	}
}

func (s *deletionService) ProcessUserDeletions(ctx context.Context) *dto.DeletionResult {
	return s.processDeletions(ctx, model.DisagreementUserDeletion)
}

func (s *deletionService) ProcessChurchDeletions(ctx context.Context) *dto.DeletionResult {
	return s.processDeletions(ctx, model.DisagreementChurchDeletion)
}

func (s *deletionService) processDeletions(ctx context.Context, disagreementType string) *dto.DeletionResult {
	result := &dto.DeletionResult{}

	due, err := s.disagreements.FindAll(ctx,
		specification.ByDisagreementType{Type: disagreementType},
		specification.ByStatus{Status: model.DisagreementStatusPending},
		specification.DeadlinePassed{Now: time.Now()},
	)
	if err != nil {
		// Cannot even enumerate candidates: abort with a single error and no
		// partial work.
		s.logger.Error("DeletionService", "Failed to query due disagreements", map[string]interface{}{
			"type":  disagreementType,
			"error": err.Error(),
		})
		result.Errors = 1
		return result
	}

	if len(due) == 0 {
		return result
	}

	for _, d := range due {
		claimed, err := s.disagreements.ClaimPending(ctx, d.Id)
		if err == nil && !claimed {
			// A concurrent run claimed this row first; it is no longer ours.
			continue
		}
		if err != nil {
			// Claim is best-effort. Forward progress beats strict two-phase
			// commit here: continue to the destructive step regardless.
			s.logger.Warn("DeletionService", "Failed to claim disagreement, proceeding anyway", map[string]interface{}{
				"disagreement_id": d.Id,
				"error":           err.Error(),
			})
		}

		result.Processed++

		hadError := s.executeConsequence(ctx, d)

		// Every visited row must end terminal, or it retry-loops daily.
		if err := s.disagreements.MarkCompleted(ctx, d.Id); err != nil {
			s.logger.Error("DeletionService", "Failed to mark disagreement completed", map[string]interface{}{
				"disagreement_id": d.Id,
				"error":           err.Error(),
			})
			hadError = true
		}

		if hadError {
			result.Errors++
		} else {
			result.Deleted++
		}

		if s.publisher != nil {
			event := events.NewDeletionProcessed(d.Id, d.UserId, d.DisagreementType, hadError)
			if err := s.publisher.Publish(ctx, event); err != nil {
				s.logger.Warn("DeletionService", "Failed to publish deletion event", map[string]interface{}{
					"disagreement_id": d.Id,
					"error":           err.Error(),
				})
			}
		}
	}

	return result
}

// executeConsequence applies the per-type destructive step. Returns true when
// anything failed; the row is completed by the caller either way.
func (s *deletionService) executeConsequence(ctx context.Context, d *model.LegalDisagreement) bool {
	switch d.DisagreementType {
	case model.DisagreementUserDeletion:
		return s.deleteUser(ctx, d)
	case model.DisagreementChurchDeletion:
		return s.deleteChurch(ctx, d)
	default:
		s.logger.Error("DeletionService", "Unknown disagreement type", map[string]interface{}{
			"disagreement_id": d.Id,
			"type":            d.DisagreementType,
		})
		return true
	}
}

func (s *deletionService) deleteUser(ctx context.Context, d *model.LegalDisagreement) bool {
	if d.ProfileId != nil {
		if err := s.profiles.Anonymize(ctx, *d.ProfileId); err != nil {
			// Anonymization is the precondition for safe identity deletion;
			// skip the identity step when it fails.
			s.logger.Error("DeletionService", "Failed to anonymize profile", map[string]interface{}{
				"disagreement_id": d.Id,
				"profile_id":      *d.ProfileId,
				"error":           err.Error(),
			})
			return true
		}
	}

	if err := s.identity.DeleteUser(ctx, d.UserId); err != nil {
		s.logger.Error("DeletionService", "Failed to delete authentication identity", map[string]interface{}{
			"disagreement_id": d.Id,
			"user_id":         d.UserId,
			"error":           err.Error(),
		})
		return true
	}

	return false
}

func (s *deletionService) deleteChurch(ctx context.Context, d *model.LegalDisagreement) bool {
	if d.ChurchId == nil {
		s.logger.Error("DeletionService", "Church deletion row without church_id", map[string]interface{}{
			"disagreement_id": d.Id,
		})
		return true
	}

	if err := s.churches.Deactivate(ctx, *d.ChurchId); err != nil {
		s.logger.Error("DeletionService", "Failed to deactivate church", map[string]interface{}{
			"disagreement_id": d.Id,
			"church_id":       *d.ChurchId,
			"error":           err.Error(),
		})
		return true
	}

	if _, err := s.profiles.DetachFromChurch(ctx, *d.ChurchId); err != nil {
		s.logger.Error("DeletionService", "Failed to detach member profiles", map[string]interface{}{
			"disagreement_id": d.Id,
			"church_id":       *d.ChurchId,
			"error":           err.Error(),
		})
		return true
	}

	return false
}
