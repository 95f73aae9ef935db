package bootstrap

import (
	"context"
	"log"
	"time"

	"churchhub-be/internal/config"
	"churchhub-be/internal/controller"
	"churchhub-be/internal/handler"
	"churchhub-be/internal/pkg/identity"
	"churchhub-be/internal/pkg/logger"
	"churchhub-be/internal/pkg/mailer"
	"churchhub-be/internal/pkg/serverutils"
	"churchhub-be/internal/repository/implementation"
	"churchhub-be/internal/service"
	"churchhub-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// AppContainer wires repositories, services and controllers. Kept as plain
// public fields so the server can register routes.
type AppContainer struct {
	CronController  controller.ICronController
	LegalController controller.ILegalController

	NotificationHandler *handler.NotificationHandler
	NotificationService *service.NotificationService
	WebSocketHub        *websocket.Hub

	SysLogger logger.ILogger
	Redis     *redis.Client

	Cfg *config.Config
}

func NewContainer(db *gorm.DB, cfg *config.Config) *AppContainer {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	identityClient := identity.NewClient(cfg.Identity.AdminURL, cfg.Identity.ServiceKey)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Redis (rate limiter + websocket fan-out)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Repositories
	disagreementRepo := implementation.NewLegalDisagreementRepository(db)
	profileRepo := implementation.NewProfileRepository(db)
	churchRepo := implementation.NewChurchRepository(db)
	notifRepo := implementation.NewNotificationRepository(db)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub)

	legalService := service.NewLegalService(
		disagreementRepo,
		profileRepo,
		churchRepo,
		publisherService,
		sysLogger,
		service.LegalPolicy{
			UserDeletionDelay:   time.Duration(cfg.Legal.UserDeletionDays) * 24 * time.Hour,
			ChurchDeletionDelay: time.Duration(cfg.Legal.ChurchDeletionDays) * 24 * time.Hour,
		},
	)

	deletionService := service.NewDeletionService(
		disagreementRepo,
		profileRepo,
		churchRepo,
		identityClient,
		publisherService,
		sysLogger,
	)

	warningService := service.NewWarningService(
		disagreementRepo,
		profileRepo,
		churchRepo,
		emailService,
		publisherService,
		sysLogger,
		service.WarningConfig{
			Window:     time.Duration(cfg.Legal.WarningWindowDays) * 24 * time.Hour,
			BatchSize:  cfg.Legal.EmailBatchSize,
			BatchPause: time.Duration(cfg.Legal.EmailBatchPauseMs) * time.Millisecond,
		},
	)

	notifService := service.NewNotificationService(notifRepo, pubSub, cfg.App.EventTopic, wsHub, wsLogger)
	if err := notifService.Start(context.Background()); err != nil {
		log.Printf("[WARN] Failed to start notification consumer: %v", err)
	}

	// 5. Controllers & Handlers
	runGate := serverutils.NewRunGate(time.Duration(cfg.Cron.MinRunGapSecs) * time.Second)
	cronController := controller.NewCronController(deletionService, warningService, runGate, sysLogger)
	legalController := controller.NewLegalController(legalService)
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, cfg.App.JWTSecret, wsLogger)

	return &AppContainer{
		CronController:      cronController,
		LegalController:     legalController,
		NotificationHandler: notifHandler,
		NotificationService: notifService,
		WebSocketHub:        wsHub,
		SysLogger:           sysLogger,
		Redis:               rdb,
		Cfg:                 cfg,
	}
}
