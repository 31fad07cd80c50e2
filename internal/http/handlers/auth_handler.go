package handlers

import (
	"shopledger/internal/domain"
	applog "shopledger/internal/log"
	"shopledger/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	ShopName string `json:"shopName"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	u, tok, err := h.Auth.Signup(req.Email, req.Password, req.ShopName)
	if err != nil {
		applog.Security(c, "auth.signup.fail", map[string]any{"email": req.Email})
		return failWith(c, err, fiber.StatusBadRequest)
	}
	applog.Audit(c, "auth.signup", map[string]any{"email": u.Email})
	return c.JSON(fiber.Map{"email": u.Email, "shopName": u.ShopName, "token": tok})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	u, tok, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return fail(c, fiber.StatusBadRequest, services.ErrBadCreds.Error())
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": u.Email})
	return c.JSON(fiber.Map{"email": u.Email, "shopName": u.ShopName, "token": tok})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return fail(c, fiber.StatusInternalServerError, "server error")
	}
	return c.JSON(u)
}
