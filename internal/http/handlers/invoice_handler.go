package handlers

import (
	applog "shopledger/internal/log"
	"shopledger/internal/services"
	"shopledger/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	Invoices *services.InvoiceService
}

func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.Invoices.ListByOwner(owner(c).ID)
	if err != nil {
		applog.Error(c, "invoice.list.fail", err, nil)
		return fail(c, fiber.StatusBadRequest, "could not load invoices")
	}
	return c.JSON(invoices)
}

func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var req struct {
		Items []services.ItemRequest `json:"items"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	inv, err := h.Invoices.Create(req.Items, owner(c).ID)
	if err != nil {
		applog.Security(c, "invoice.create.fail", map[string]any{"error": err.Error()})
		// the sales endpoint keeps every failure a 400, missing products included
		return failWith(c, err, fiber.StatusBadRequest)
	}
	applog.Audit(c, "invoice.create", map[string]any{"invoice_id": inv.ID, "total": inv.Total})
	return c.Status(fiber.StatusCreated).JSON(inv)
}

func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusNotFound, "invoice not found")
	}
	inv, err := h.Invoices.Get(id, owner(c).ID)
	if err != nil {
		return failWith(c, err, fiber.StatusNotFound)
	}
	return c.JSON(inv)
}
