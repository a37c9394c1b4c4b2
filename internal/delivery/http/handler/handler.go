package handler

import (
	"errors"

	"tosraider/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// respondError maps domain errors onto HTTP statuses. Anything unrecognized
// is an internal error.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, entity.ErrEmailTaken):
		status = fiber.StatusBadRequest
	case errors.Is(err, entity.ErrBadCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, entity.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, entity.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, entity.ErrQuotaExceeded):
		status = fiber.StatusTooManyRequests
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
