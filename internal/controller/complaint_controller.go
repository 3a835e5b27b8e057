// FILE: internal/controller/complaint_controller.go
package controller

import (
	"devagency-be/internal/dto"
	"devagency-be/internal/pkg/serverutils"
	"devagency-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IComplaintController interface {
	RegisterRoutes(r fiber.Router)
}

type complaintController struct {
	service service.IComplaintService
}

func NewComplaintController(service service.IComplaintService) IComplaintController {
	return &complaintController{service: service}
}

func (c *complaintController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/complaints", serverutils.JwtMiddleware)
	h.Post("/", c.Create)
	h.Get("/", c.GetOwn)
	h.Get("/:id", c.GetDetail)
	h.Post("/:id/messages", c.AddMessage)
	h.Post("/:id/reopen", c.RequestReopen)
}

func (c *complaintController) Create(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.ComplaintCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Complaint filed", res))
}

func (c *complaintController) GetOwn(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetOwn(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Complaints", res))
}

func (c *complaintController) GetDetail(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	complaintId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid complaint id"))
	}

	res, err := c.service.GetDetail(ctx.Context(), userId, complaintId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Complaint detail", res))
}

func (c *complaintController) AddMessage(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	complaintId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid complaint id"))
	}

	var req dto.ComplaintMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddMessage(ctx.Context(), userId, currentRole(ctx), complaintId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message added", res))
}

func (c *complaintController) RequestReopen(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	complaintId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid complaint id"))
	}

	res, err := c.service.RequestReopen(ctx.Context(), userId, complaintId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reopen requested", res))
}
