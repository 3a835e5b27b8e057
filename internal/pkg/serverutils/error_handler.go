// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"devagency-be/internal/pkg/apperror"
)

// statusFor maps error kinds onto HTTP status codes. Conflicting lifecycle
// transitions surface as 409 so clients can refetch and retry.
func statusFor(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindValidation, apperror.KindCoupon:
		return fiber.StatusBadRequest
	case apperror.KindAuthorization:
		return fiber.StatusForbidden
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindInvalidState:
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// common error envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := statusFor(err)
		message := err.Error()
		if status == fiber.StatusInternalServerError {
			message = "Internal server error"
		}
		return ctx.Status(status).JSON(ErrorResponse(status, message))
	}
}
