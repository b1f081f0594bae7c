package serverutils

import (
	"errors"

	"codementor-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service errors to HTTP responses so controllers
// can simply `return err`.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(FailResponse(fiberErr.Message))
		}

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, apperrors.ErrPermissionDenied):
			status = fiber.StatusForbidden
		case errors.Is(err, apperrors.ErrConflict):
			status = fiber.StatusConflict
		case errors.Is(err, apperrors.ErrUnauthorized):
			status = fiber.StatusUnauthorized
		case errors.Is(err, apperrors.ErrUpstreamUnavailable):
			status = fiber.StatusServiceUnavailable
		case errors.Is(err, apperrors.ErrIDGeneration):
			status = fiber.StatusInternalServerError
		}

		return ctx.Status(status).JSON(FailResponse(err.Error()))
	}
}
