package handlers

import (
	"shopledger/internal/domain"
	applog "shopledger/internal/log"
	"shopledger/internal/services"
	"shopledger/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func owner(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.ListByOwner(owner(c).ID)
	if err != nil {
		applog.Error(c, "product.list.fail", err, nil)
		return fail(c, fiber.StatusBadRequest, "could not load products")
	}
	return c.JSON(products)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	p, err := h.Catalog.Create(owner(c).ID, in)
	if err != nil {
		return failWith(c, err, fiber.StatusBadRequest)
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusNotFound, "product not found")
	}
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	p, err := h.Catalog.Update(id, owner(c).ID, in)
	if err != nil {
		return failWith(c, err, fiber.StatusNotFound)
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": p.ID})
	return c.JSON(p)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusNotFound, "product not found")
	}
	p, err := h.Catalog.Delete(id, owner(c).ID)
	if err != nil {
		return failWith(c, err, fiber.StatusNotFound)
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"message": "product deleted successfully", "product": p})
}
