package middleware

import (
	"github.com/gofiber/fiber/v2"

	"vehicle-service/internal/domain"
)

// Trust headers set by the upstream gateway after it has authenticated the
// caller. Clients never reach this service directly, so the headers are
// taken at face value.
const (
	HeaderUserSubject = "X-User-Subject"
	HeaderUserRoles   = "X-User-Roles"

	identityContextKey = "identity"
)

// GatewayAuth extracts the caller identity from the trust headers. A missing
// subject header means the gateway did not authenticate the request.
func GatewayAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject := c.Get(HeaderUserSubject)
		if subject == "" {
			return Unauthorized("Missing " + HeaderUserSubject + " header")
		}

		identity := domain.Identity{
			Subject: subject,
			Roles:   domain.ParseRoles(c.Get(HeaderUserRoles)),
		}

		c.Locals(identityContextKey, identity)
		return c.Next()
	}
}

func GetIdentity(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(identityContextKey).(domain.Identity)
	return identity, ok
}
