package middleware

import (
	"log"

	"taxpilot/internal/services/entitlements"
	"taxpilot/internal/services/featuregate"
	"taxpilot/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// FeatureGateMiddleware blocks requests the caller's plan does not permit.
// Checks run before the handler; the usage log is only written once the
// handler succeeds, so a failed calculation never burns an allowance.
type FeatureGateMiddleware struct {
	entitlements entitlements.Service
}

func NewFeatureGateMiddleware(svc entitlements.Service) *FeatureGateMiddleware {
	return &FeatureGateMiddleware{entitlements: svc}
}

// Require gates a route on one counted action. The gate result for denied
// requests is returned in the error envelope so the client can render the
// reason and upgrade hint.
func (m *FeatureGateMiddleware) Require(action string, check func(*featuregate.Gate) featuregate.Result) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := UserClaims(c)
		if !ok {
			return utils.Unauthorized(c, "unauthorized")
		}

		gate, err := m.entitlements.GateFor(c.Context(), claims.UserID)
		if err != nil {
			log.Printf("failed to resolve entitlements for user %d: %v", claims.UserID, err)
			return utils.InternalError(c, "failed to check plan limits")
		}

		result := check(gate)
		if !result.Allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   result.Reason,
				"gate":    result,
			})
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Only successful responses count against the allowance.
		if c.Response().StatusCode() < 400 {
			if _, err := m.entitlements.RecordUsage(c.Context(), claims.UserID, action); err != nil {
				log.Printf("failed to record %s usage for user %d: %v", action, claims.UserID, err)
			}
		}
		return nil
	}
}
