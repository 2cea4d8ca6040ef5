// Package auth provides authentication handlers for Fiber.
package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/orgstack/tenant-backend/internal/services"
)

// Login authenticates an administrator by email and password and issues a
// token bound to the administrator's tenant.
func Login(admins services.IdentityStore, tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if req.Email == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
		}

		ctx := c.Context()
		admin, err := admins.FindByEmail(ctx, req.Email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up administrator"})
		}
		if admin == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
		}

		if !CheckPasswordHash(req.Password, admin.PasswordHash) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
		}

		token, err := tokens.Issue(admin.Key, admin.TenantName)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
		}

		return c.JSON(LoginResponse{Token: token})
	}
}
