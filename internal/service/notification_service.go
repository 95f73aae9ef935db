package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"churchhub-be/internal/model"
	"churchhub-be/internal/pkg/logger"
	"churchhub-be/internal/repository"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
}

type NotificationService struct {
	repo      repository.NotificationRepository
	pubSub    *gochannel.GoChannel
	topicName string
	delivery  NotificationDelivery
	logger    logger.ILogger
}

func NewNotificationService(
	repo repository.NotificationRepository,
	pubSub *gochannel.GoChannel,
	topicName string,
	delivery NotificationDelivery,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		repo:      repo,
		pubSub:    pubSub,
		topicName: topicName,
		delivery:  delivery,
		logger:    log,
	}
}

// Start begins consuming the legal event topic.
func (s *NotificationService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	s.logger.Info("NotificationService", fmt.Sprintf("Listening on topic %s", s.topicName), nil)
	return nil
}

func (s *NotificationService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	typeCode := msg.Metadata.Get("event_type")

	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Error("NotificationService", "Malformed event payload", map[string]interface{}{"error": err.Error()})
		return
	}

	config, err := s.repo.GetNotificationTypeByCode(ctx, typeCode)
	if err != nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("Config not found for code: '%s'", typeCode), map[string]interface{}{"error": err.Error()})
		return
	}
	if !config.IsActive {
		return
	}

	userIdStr, _ := payload["user_id"].(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		s.logger.Warn("NotificationService", "Event without a resolvable user_id", map[string]interface{}{"type": typeCode})
		return
	}

	notif := s.buildNotification(userId, config, payload)

	if err := s.repo.CreateNotification(ctx, &notif); err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userId), map[string]interface{}{"error": err.Error()})
		return
	}

	if s.delivery != nil {
		s.delivery.Send(userId, notif)
	}
}

func (s *NotificationService) buildNotification(userId uuid.UUID, config *model.NotificationType, payload map[string]interface{}) model.Notification {
	metaJSON, _ := json.Marshal(payload)

	return model.Notification{
		ID:        uuid.New(),
		UserID:    userId,
		TypeCode:  config.Code,
		Title:     config.DisplayName,
		Message:   config.Template,
		Metadata:  datatypes.JSON(metaJSON),
		IsRead:    false,
		CreatedAt: time.Now(),
	}
}

// Read-side API used by the notification handler.

func (s *NotificationService) GetNotifications(ctx context.Context, userId uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userId, limit, offset)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userId uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userId)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationId uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, notificationId)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userId uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userId)
}
