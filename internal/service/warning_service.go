package service

import (
	"context"
	"time"

	"churchhub-be/internal/dto"
	"churchhub-be/internal/model"
	"churchhub-be/internal/pkg/logger"
	"churchhub-be/internal/pkg/mailer"
	"churchhub-be/internal/repository/contract"
	"churchhub-be/internal/repository/specification"
	"churchhub-be/pkg/events"
)

// IWarningService sends the one-time "deletion is coming" email ahead of each
// disagreement deadline. Mirrors IDeletionService: counts out, never an error.
type IWarningService interface {
	SendUserWarnings(ctx context.Context) *dto.WarningResult
	SendChurchWarnings(ctx context.Context) *dto.WarningResult
}

type WarningConfig struct {
	Window     time.Duration
	BatchSize  int
	BatchPause time.Duration
}

type warningService struct {
	disagreements contract.LegalDisagreementRepository
	profiles      contract.ProfileRepository
	churches      contract.ChurchRepository
	mailer        mailer.IEmailService
	publisher     IEventPublisher
	logger        logger.ILogger
	cfg           WarningConfig
}

func NewWarningService(
	disagreements contract.LegalDisagreementRepository,
	profiles contract.ProfileRepository,
	churches contract.ChurchRepository,
	emailService mailer.IEmailService,
	publisher IEventPublisher,
	log logger.ILogger,
	cfg WarningConfig,
) IWarningService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	return &warningService{
		disagreements: disagreements,
		profiles:      profiles,
		churches:      churches,
		mailer:        emailService,
		publisher:     publisher,
		logger:        log,
		cfg:           cfg,
	}
}

func (s *warningService) SendUserWarnings(ctx context.Context) *dto.WarningResult {
	return s.sendWarnings(ctx, model.DisagreementUserDeletion)
}

func (s *warningService) SendChurchWarnings(ctx context.Context) *dto.WarningResult {
	return s.sendWarnings(ctx, model.DisagreementChurchDeletion)
}

func (s *warningService) sendWarnings(ctx context.Context, disagreementType string) *dto.WarningResult {
	result := &dto.WarningResult{}

	approaching, err := s.disagreements.FindAll(ctx,
		specification.ByDisagreementType{Type: disagreementType},
		specification.ByStatus{Status: model.DisagreementStatusPending},
		specification.WarningNotSent{},
		specification.DeadlineWithin{Now: time.Now(), Window: s.cfg.Window},
	)
	if err != nil {
		s.logger.Error("WarningService", "Failed to query approaching disagreements", map[string]interface{}{
			"type":  disagreementType,
			"error": err.Error(),
		})
		result.Errors = 1
		return result
	}

	for _, d := range approaching {
		result.Processed++

		recipients, err := s.resolveRecipients(ctx, d)
		if err != nil {
			s.logger.Error("WarningService", "Failed to resolve warning recipients", map[string]interface{}{
				"disagreement_id": d.Id,
				"error":           err.Error(),
			})
			result.Errors++
		}

		sent := 0
		cancelled := false
		for i, email := range recipients {
			// Pause between fixed-size groups so the provider does not
			// throttle a big church.
			if i > 0 && i%s.cfg.BatchSize == 0 && s.cfg.BatchPause > 0 {
				select {
				case <-time.After(s.cfg.BatchPause):
				case <-ctx.Done():
					cancelled = true
				}
				if cancelled {
					s.logger.Warn("WarningService", "Run cancelled mid-batch, stopping sends", map[string]interface{}{
						"disagreement_id": d.Id,
						"sent":            sent,
						"remaining":       len(recipients) - i,
					})
					break
				}
			}

			if err := s.mailer.SendDeletionWarning(email, d.DocumentType, d.DeadlineAt); err != nil {
				s.logger.Error("WarningService", "Failed to send warning email", map[string]interface{}{
					"disagreement_id": d.Id,
					"error":           err.Error(),
				})
				result.Errors++
				continue
			}
			sent++
		}
		result.Sent += sent

		// Stamp regardless of individual send outcomes: a duplicate-warning
		// storm is worse than a missed retry.
		if err := s.disagreements.MarkWarningSent(ctx, d.Id); err != nil {
			s.logger.Error("WarningService", "Failed to mark warning sent", map[string]interface{}{
				"disagreement_id": d.Id,
				"error":           err.Error(),
			})
			result.Errors++
			continue
		}

		if s.publisher != nil && sent > 0 {
			event := events.NewDeletionWarningSent(d.Id, d.UserId, d.DisagreementType, d.DeadlineAt, sent)
			if err := s.publisher.Publish(ctx, event); err != nil {
				s.logger.Warn("WarningService", "Failed to publish warning event", map[string]interface{}{
					"disagreement_id": d.Id,
					"error":           err.Error(),
				})
			}
		}

		if cancelled {
			break
		}
	}

	return result
}

func (s *warningService) resolveRecipients(ctx context.Context, d *model.LegalDisagreement) ([]string, error) {
	if d.DisagreementType == model.DisagreementChurchDeletion && d.ChurchId != nil {
		return s.churches.GetMemberEmails(ctx, *d.ChurchId)
	}

	if d.ProfileId == nil {
		return nil, nil
	}
	profile, err := s.profiles.FindOne(ctx, specification.ByID{ID: *d.ProfileId})
	if err != nil {
		return nil, err
	}
	if profile.Anonymized || profile.Email == "" {
		return nil, nil
	}
	return []string{profile.Email}, nil
}
