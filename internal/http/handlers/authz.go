package handlers

import (
	"strings"

	applog "shopledger/internal/log"
	"shopledger/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireUser parses the Authorization header, verifies the bearer token and
// attaches the resolved owner to the request context.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fail(c, fiber.StatusUnauthorized, "authorization token required")
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return fail(c, fiber.StatusUnauthorized, "authorization token required")
		}
		u, err := auth.Resolve(token)
		if err != nil {
			applog.Security(c, "auth.token.invalid", nil)
			return fail(c, fiber.StatusUnauthorized, "request is not authorized")
		}
		c.Locals("user", u)
		c.Locals("userID", u.ID)
		return c.Next()
	}
}
