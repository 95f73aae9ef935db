package controller

import (
	"churchhub-be/internal/pkg/logger"
	"churchhub-be/internal/pkg/serverutils"
	"churchhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ICronController exposes the scheduler-triggered pipelines. Every route sits
// behind the rate limiter, the run gate and the cron secret check.
type ICronController interface {
	RegisterRoutes(r fiber.Router, middleware ...fiber.Handler)
	ProcessUserDeletions(ctx *fiber.Ctx) error
	ProcessChurchDeletions(ctx *fiber.Ctx) error
	SendUserDeletionWarnings(ctx *fiber.Ctx) error
	SendChurchDeletionWarnings(ctx *fiber.Ctx) error
}

type cronController struct {
	deletions service.IDeletionService
	warnings  service.IWarningService
	gate      *serverutils.RunGate
	logger    logger.ILogger
}

func NewCronController(
	deletions service.IDeletionService,
	warnings service.IWarningService,
	gate *serverutils.RunGate,
	log logger.ILogger,
) ICronController {
	return &cronController{
		deletions: deletions,
		warnings:  warnings,
		gate:      gate,
		logger:    log,
	}
}

func (c *cronController) RegisterRoutes(r fiber.Router, middleware ...fiber.Handler) {
	h := r.Group("/cron")
	for _, m := range middleware {
		h.Use(m)
	}
	h.Get("/process-user-deletions", c.ProcessUserDeletions)
	h.Get("/process-church-deletions", c.ProcessChurchDeletions)
	h.Get("/send-user-deletion-warnings", c.SendUserDeletionWarnings)
	h.Get("/send-church-deletion-warnings", c.SendChurchDeletionWarnings)
}

// allowRun rejects triggers that arrive inside the minimum run gap for the
// same job (overlapping or duplicated scheduler fires).
func (c *cronController) allowRun(job string) bool {
	if c.gate.Allow(job) {
		return true
	}
	c.logger.Warn("CronController", "Run rejected by gate", map[string]interface{}{"job": job})
	return false
}

func (c *cronController) ProcessUserDeletions(ctx *fiber.Ctx) error {
	const job = "process-user-deletions"
	if !c.allowRun(job) {
		return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests"})
	}

	result := c.deletions.ProcessUserDeletions(ctx.Context())
	c.logger.Info("CronController", "User deletion run finished", map[string]interface{}{
		"processed": result.Processed,
		"deleted":   result.Deleted,
		"errors":    result.Errors,
	})

	return ctx.JSON(fiber.Map{
		"success":   true,
		"processed": result.Processed,
		"deleted":   result.Deleted,
		"errors":    result.Errors,
	})
}

func (c *cronController) ProcessChurchDeletions(ctx *fiber.Ctx) error {
	const job = "process-church-deletions"
	if !c.allowRun(job) {
		return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests"})
	}

	result := c.deletions.ProcessChurchDeletions(ctx.Context())
	c.logger.Info("CronController", "Church deletion run finished", map[string]interface{}{
		"processed": result.Processed,
		"deleted":   result.Deleted,
		"errors":    result.Errors,
	})

	return ctx.JSON(fiber.Map{
		"success":   true,
		"processed": result.Processed,
		"deleted":   result.Deleted,
		"errors":    result.Errors,
	})
}

func (c *cronController) SendUserDeletionWarnings(ctx *fiber.Ctx) error {
	const job = "send-user-deletion-warnings"
	if !c.allowRun(job) {
		return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests"})
	}

	result := c.warnings.SendUserWarnings(ctx.Context())
	c.logger.Info("CronController", "User warning run finished", map[string]interface{}{
		"processed": result.Processed,
		"sent":      result.Sent,
		"errors":    result.Errors,
	})

	return ctx.JSON(fiber.Map{
		"success":   true,
		"processed": result.Processed,
		"sent":      result.Sent,
		"errors":    result.Errors,
	})
}

func (c *cronController) SendChurchDeletionWarnings(ctx *fiber.Ctx) error {
	const job = "send-church-deletion-warnings"
	if !c.allowRun(job) {
		return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests"})
	}

	result := c.warnings.SendChurchWarnings(ctx.Context())
	c.logger.Info("CronController", "Church warning run finished", map[string]interface{}{
		"processed": result.Processed,
		"sent":      result.Sent,
		"errors":    result.Errors,
	})

	return ctx.JSON(fiber.Map{
		"success":   true,
		"processed": result.Processed,
		"sent":      result.Sent,
		"errors":    result.Errors,
	})
}
