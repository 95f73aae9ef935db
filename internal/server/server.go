package server

import (
	"log"
	"time"

	"churchhub-be/internal/bootstrap"
	"churchhub-be/internal/config"
	"churchhub-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.AppContainer
}

func New(cfg *config.Config, container *bootstrap.AppContainer) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.AppContainer) {
	api := app.Group("/api")

	// Scheduler endpoints: rate limit first, secret check second, so an
	// unauthenticated flood still burns its budget before touching crypto.
	c.CronController.RegisterRoutes(api,
		serverutils.RateLimitMiddleware(
			c.Redis,
			c.SysLogger,
			"cron",
			cfg.Cron.RateLimit,
			time.Duration(cfg.Cron.RateWindowSecs)*time.Second,
		),
		serverutils.CronAuthMiddleware(cfg.Cron.Secret),
	)

	c.LegalController.RegisterRoutes(api, serverutils.JwtMiddleware(cfg.App.JWTSecret))
	c.NotificationHandler.RegisterRoutes(api)
}
