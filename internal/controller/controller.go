// FILE: internal/controller/controller.go
package controller

import (
	"devagency-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	idStr, _ := ctx.Locals("user_id").(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token subject")
	}
	return id, nil
}

func currentRole(ctx *fiber.Ctx) entity.UserRole {
	role, _ := ctx.Locals("role").(string)
	return entity.UserRole(role)
}
