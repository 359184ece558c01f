package middleware

import (
	"strings"

	"taxpilot/internal/services/featuregate"
	"taxpilot/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// OptionalHandler authenticates the request when a Bearer token is
// present but lets anonymous requests through. Calculator endpoints are
// public; plan gating and persistence only apply to signed-in callers.
func (m *AuthMiddleware) OptionalHandler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Next()
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}
	return m.Handler(c)
}

// RequireIfAuthenticated applies a feature-gate check only when the
// request carries claims. Anonymous requests pass through ungated.
func (m *FeatureGateMiddleware) RequireIfAuthenticated(action string, check func(*featuregate.Gate) featuregate.Result) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := UserClaims(c); !ok {
			return c.Next()
		}
		return m.Require(action, check)(c)
	}
}
