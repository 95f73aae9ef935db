package controller

import (
	"errors"

	"churchhub-be/internal/dto"
	"churchhub-be/internal/pkg/serverutils"
	"churchhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILegalController interface {
	RegisterRoutes(r fiber.Router, middleware ...fiber.Handler)
	CreateDisagreement(ctx *fiber.Ctx) error
	WithdrawDisagreement(ctx *fiber.Ctx) error
	GetDisagreements(ctx *fiber.Ctx) error
}

type legalController struct {
	service service.ILegalService
}

func NewLegalController(service service.ILegalService) ILegalController {
	return &legalController{service: service}
}

func (c *legalController) RegisterRoutes(r fiber.Router, middleware ...fiber.Handler) {
	h := r.Group("/legal")
	for _, m := range middleware {
		h.Use(m)
	}
	h.Post("/disagreements", c.CreateDisagreement)
	h.Delete("/disagreements/:id", c.WithdrawDisagreement)
	h.Get("/disagreements", c.GetDisagreements)
}

func (c *legalController) CreateDisagreement(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateDisagreementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateDisagreement(ctx.Context(), userId, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDisagreementExists):
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		case errors.Is(err, service.ErrChurchRequired),
			errors.Is(err, service.ErrUnknownDocumentType):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		case errors.Is(err, service.ErrNotChurchOwner):
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Disagreement recorded", res))
}

func (c *legalController) WithdrawDisagreement(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	disagreementId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid disagreement ID"))
	}

	if err := c.service.WithdrawDisagreement(ctx.Context(), userId, disagreementId); err != nil {
		switch {
		case errors.Is(err, service.ErrDisagreementNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case errors.Is(err, service.ErrDisagreementNotPending):
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Disagreement withdrawn", nil))
}

func (c *legalController) GetDisagreements(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetDisagreements(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("User disagreements", res))
}
