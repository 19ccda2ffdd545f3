package middleware

import (
	"github.com/gofiber/fiber/v2"

	"vehicle-service/internal/domain"
)

func RequireAnyRole(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return Unauthorized("User not authenticated")
		}

		for _, role := range roles {
			if identity.HasRole(role) {
				return c.Next()
			}
		}

		return Forbidden("Insufficient permissions for this operation")
	}
}
