// FILE: internal/controller/content_controller.go
package controller

import (
	"devagency-be/internal/dto"
	"devagency-be/internal/pkg/serverutils"
	"devagency-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
}

type contentController struct {
	service service.IContentService
}

func NewContentController(service service.IContentService) IContentController {
	return &contentController{service: service}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content")
	h.Get("/team", c.GetTeamMembers)
	h.Get("/services", c.GetServices)
	h.Get("/features", c.GetSiteFeatures)
	h.Get("/payment-options", c.GetPaymentOptions)

	r.Post("/newsletter", c.SubscribeNewsletter)
	r.Post("/contact", c.SubmitContactMessage)
}

func (c *contentController) GetTeamMembers(ctx *fiber.Ctx) error {
	res, err := c.service.GetTeamMembers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Team", res))
}

func (c *contentController) GetServices(ctx *fiber.Ctx) error {
	res, err := c.service.GetServices(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Services", res))
}

func (c *contentController) GetSiteFeatures(ctx *fiber.Ctx) error {
	res, err := c.service.GetSiteFeatures(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Features", res))
}

func (c *contentController) GetPaymentOptions(ctx *fiber.Ctx) error {
	res, err := c.service.GetPaymentOptions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment options", res))
}

func (c *contentController) SubscribeNewsletter(ctx *fiber.Ctx) error {
	var req dto.NewsletterSubscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.SubscribeNewsletter(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscribed to newsletter", struct{}{}))
}

func (c *contentController) SubmitContactMessage(ctx *fiber.Ctx) error {
	var req dto.ContactMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.SubmitContactMessage(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message received, we'll get back to you", struct{}{}))
}
