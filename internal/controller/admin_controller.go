// FILE: internal/controller/admin_controller.go
package controller

import (
	"devagency-be/internal/dto"
	"devagency-be/internal/pkg/serverutils"
	"devagency-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware, serverutils.AdminOnly)

	h.Get("/permissions", c.GetPermissions)
	h.Get("/stats", c.GetStats)
	h.Get("/logs", c.GetLogs)

	h.Get("/users", c.GetUsers)
	h.Put("/users/:id/role", c.UpdateUserRole)

	h.Get("/subscriptions", c.GetSubscriptions)
	h.Post("/subscriptions/:id/review", c.ReviewSubscription)

	h.Get("/cancellations", c.GetCancellations)
	h.Post("/cancellations/:id/process", c.ProcessCancellation)

	h.Get("/projects", c.GetProjects)
	h.Put("/projects/:id", c.UpdateProject)

	h.Get("/complaints", c.GetComplaints)
	h.Post("/complaints/:id/resolve", c.ResolveComplaint)
	h.Post("/complaints/:id/reopen-decision", c.DecideReopen)

	h.Get("/plans", c.GetPlans)
	h.Post("/plans", c.CreatePlan)
	h.Put("/plans/:id", c.UpdatePlan)
	h.Delete("/plans/:id", c.DeletePlan)

	h.Get("/coupons", c.GetCoupons)
	h.Post("/coupons", c.CreateCoupon)
	h.Put("/coupons/:id", c.UpdateCoupon)
	h.Delete("/coupons/:id", c.DeleteCoupon)

	h.Post("/content/team", c.CreateTeamMember)
	h.Put("/content/team/:id", c.UpdateTeamMember)
	h.Delete("/content/team/:id", c.DeleteTeamMember)
	h.Post("/content/services", c.CreateService)
	h.Put("/content/services/:id", c.UpdateService)
	h.Delete("/content/services/:id", c.DeleteService)
	h.Post("/content/features", c.CreateSiteFeature)
	h.Put("/content/features/:id", c.UpdateSiteFeature)
	h.Delete("/content/features/:id", c.DeleteSiteFeature)
	h.Post("/content/payment-options", c.CreatePaymentOption)
	h.Put("/content/payment-options/:id", c.UpdatePaymentOption)
	h.Delete("/content/payment-options/:id", c.DeletePaymentOption)

	h.Get("/newsletter", c.GetNewsletterSubscribers)
	h.Get("/contact-messages", c.GetContactMessages)
}

func paging(ctx *fiber.Ctx) (int, int) {
	limit := ctx.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := ctx.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func pathId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (c *adminController) GetPermissions(ctx *fiber.Ctx) error {
	res := c.service.GetPermissions(currentRole(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Permissions", res))
}

func (c *adminController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	limit, offset := paging(ctx)
	res, err := c.service.GetSystemLogs(ctx.Context(), ctx.Query("level"), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", res))
}

// --- Users ---

func (c *adminController) GetUsers(ctx *fiber.Ctx) error {
	limit, offset := paging(ctx)
	res, err := c.service.GetUsers(ctx.Context(), ctx.Query("search"), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Users", res))
}

func (c *adminController) UpdateUserRole(ctx *fiber.Ctx) error {
	userId, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.AdminUpdateUserRoleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateUserRole(ctx.Context(), currentRole(ctx), userId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Role updated", res))
}

// --- Subscription review ---

func (c *adminController) GetSubscriptions(ctx *fiber.Ctx) error {
	limit, offset := paging(ctx)
	res, err := c.service.GetSubscriptions(ctx.Context(), ctx.Query("status"), ctx.Query("search"), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscriptions", res))
}

func (c *adminController) ReviewSubscription(ctx *fiber.Ctx) error {
	subId, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.AdminReviewSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ReviewSubscription(ctx.Context(), subId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription reviewed", res))
}

// --- Cancellations ---

func (c *adminController) GetCancellations(ctx *fiber.Ctx) error {
	limit, offset := paging(ctx)
	res, err := c.service.GetCancellations(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Pending cancellations", res))
}

func (c *adminController) ProcessCancellation(ctx *fiber.Ctx) error {
	subId, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.AdminSettleCancellationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ProcessCancellation(ctx.Context(), subId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Cancellation processed", res))
}

// --- Projects ---

func (c *adminController) GetProjects(ctx *fiber.Ctx) error {
	limit, offset := paging(ctx)
	res, err := c.service.GetProjects(ctx.Context(), ctx.Query("status"), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Projects", res))
}

func (c *adminController) UpdateProject(ctx *fiber.Ctx) error {
	projectId, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.AdminProjectUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateProject(ctx.Context(), projectId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Project updated", res))
}

// --- Complaints ---

func (c *adminController) GetComplaints(ctx *fiber.Ctx) error {
	limit, offset := paging(ctx)
	res, err := c.service.GetComplaints(ctx.Context(), ctx.Query("status"), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Complaints", res))
}

func (c *adminController) ResolveComplaint(ctx *fiber.Ctx) error {
	complaintId, err := pathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ResolveComplaint(ctx.Context(), complaintId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Complaint resolved", res))
}

func (c *adminController) DecideReopen(ctx *fiber.Ctx) error {
	complaintId, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.AdminReopenDecisionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.DecideReopen(ctx.Context(), complaintId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reopen decision recorded", res))
}

// --- Plans ---

func (c *adminController) GetPlans(ctx *fiber.Ctx) error {
	res, err := c.service.GetPlans(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plans", res))
}

func (c *adminController) CreatePlan(ctx *fiber.Ctx) error {
	var req dto.AdminPlanCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreatePlan(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Plan created", res))
}

func (c *adminController) UpdatePlan(ctx *fiber.Ctx) error {
	planId, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.AdminPlanUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdatePlan(ctx.Context(), planId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan updated", res))
}

func (c *adminController) DeletePlan(ctx *fiber.Ctx) error {
	planId, err := pathId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeletePlan(ctx.Context(), planId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan deleted", struct{}{}))
}

// --- Coupons ---

func (c *adminController) GetCoupons(ctx *fiber.Ctx) error {
	res, err := c.service.GetCoupons(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupons", res))
}

func (c *adminController) CreateCoupon(ctx *fiber.Ctx) error {
	var req dto.AdminCouponCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateCoupon(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Coupon created", res))
}

func (c *adminController) UpdateCoupon(ctx *fiber.Ctx) error {
	couponId, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.AdminCouponUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateCoupon(ctx.Context(), couponId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupon updated", res))
}

func (c *adminController) DeleteCoupon(ctx *fiber.Ctx) error {
	couponId, err := pathId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteCoupon(ctx.Context(), couponId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupon deleted", struct{}{}))
}

// --- Content ---

func (c *adminController) CreateTeamMember(ctx *fiber.Ctx) error {
	var req dto.AdminTeamMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateTeamMember(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Team member created", res))
}

func (c *adminController) UpdateTeamMember(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.AdminTeamMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateTeamMember(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Team member updated", res))
}

func (c *adminController) DeleteTeamMember(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteTeamMember(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Team member deleted", struct{}{}))
}

func (c *adminController) CreateService(ctx *fiber.Ctx) error {
	var req dto.AdminServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateService(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Service created", res))
}

func (c *adminController) UpdateService(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.AdminServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateService(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service updated", res))
}

func (c *adminController) DeleteService(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteService(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service deleted", struct{}{}))
}

func (c *adminController) CreateSiteFeature(ctx *fiber.Ctx) error {
	var req dto.AdminSiteFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateSiteFeature(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Feature created", res))
}

func (c *adminController) UpdateSiteFeature(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.AdminSiteFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateSiteFeature(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature updated", res))
}

func (c *adminController) DeleteSiteFeature(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteSiteFeature(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature deleted", struct{}{}))
}

func (c *adminController) CreatePaymentOption(ctx *fiber.Ctx) error {
	var req dto.AdminPaymentOptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreatePaymentOption(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Payment option created", res))
}

func (c *adminController) UpdatePaymentOption(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.AdminPaymentOptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdatePaymentOption(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment option updated", res))
}

func (c *adminController) DeletePaymentOption(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeletePaymentOption(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment option deleted", struct{}{}))
}

// --- Inbound forms ---

func (c *adminController) GetNewsletterSubscribers(ctx *fiber.Ctx) error {
	limit, offset := paging(ctx)
	res, err := c.service.GetNewsletterSubscribers(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Newsletter subscribers", res))
}

func (c *adminController) GetContactMessages(ctx *fiber.Ctx) error {
	limit, offset := paging(ctx)
	res, err := c.service.GetContactMessages(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Contact messages", res))
}
