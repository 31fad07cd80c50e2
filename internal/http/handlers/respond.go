package handlers

import (
	"errors"

	"shopledger/internal/domain"

	"github.com/gofiber/fiber/v2"
)

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// failWith maps the workflow error taxonomy to HTTP statuses. notFoundStatus
// differs per route: 404 on the product endpoints, 400 on invoice creation.
func failWith(c *fiber.Ctx, err error, notFoundStatus int) error {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return fail(c, notFoundStatus, nf.Error())
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fail(c, fiber.StatusBadRequest, ve.Error())
	}
	var ise *domain.InsufficientStockError
	if errors.As(err, &ise) {
		return fail(c, fiber.StatusBadRequest, ise.Error())
	}
	return fail(c, fiber.StatusBadRequest, err.Error())
}
