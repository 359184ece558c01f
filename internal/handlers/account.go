package handlers

import (
	"strconv"

	"taxpilot/internal/middleware"
	"taxpilot/internal/services/analysis"
	"taxpilot/internal/services/entitlements"
	"taxpilot/internal/services/featuregate"
	"taxpilot/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler exposes the signed-in user's plan limits, usage and
// analysis history.
type AccountHandler struct {
	entitlements    entitlements.Service
	analysisService analysis.Service
}

func NewAccountHandler(entitlementsService entitlements.Service, analysisService analysis.Service) *AccountHandler {
	return &AccountHandler{
		entitlements:    entitlementsService,
		analysisService: analysisService,
	}
}

// Limits returns the current plan, per-feature usage and upgrade hints.
func (h *AccountHandler) Limits(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication required")
	}

	gate, err := h.entitlements.GateFor(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to load feature limits")
	}

	return utils.Success(c, fiber.Map{
		"limits":      gate.LimitsOverview(),
		"suggestions": gate.UpgradeSuggestions(),
	})
}

// Usage lists the month-to-date gated actions with per-action totals.
func (h *AccountHandler) Usage(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication required")
	}

	logs, err := h.entitlements.UsageLogs(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to load usage")
	}

	return utils.Success(c, fiber.Map{
		"actions": featuregate.UsageFromLogs(logs),
		"logs":    logs,
	})
}

// History lists the user's past analyses, newest first.
func (h *AccountHandler) History(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication required")
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			return utils.BadRequest(c, "limit must be between 1 and 100")
		}
		limit = parsed
	}

	history, err := h.analysisService.History(c.Context(), claims.UserID, limit)
	if err != nil {
		return utils.InternalError(c, "Failed to load analysis history")
	}
	return utils.Success(c, fiber.Map{"history": history})
}
