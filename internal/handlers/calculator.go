package handlers

import (
	"errors"
	"log"
	"strconv"

	"taxpilot/internal/middleware"
	"taxpilot/internal/services/analysis"
	"taxpilot/internal/services/taxengine"
	"taxpilot/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// CalculatorHandler serves the tax analysis and canton comparison
// endpoints.
type CalculatorHandler struct {
	analysisService analysis.Service
	engine          *taxengine.Engine
}

func NewCalculatorHandler(analysisService analysis.Service, engine *taxengine.Engine) *CalculatorHandler {
	return &CalculatorHandler{
		analysisService: analysisService,
		engine:          engine,
	}
}

// Analyze computes the tax health score for a company profile.
// Required fields: revenue, canton, legalForm.
func (h *CalculatorHandler) Analyze(c *fiber.Ctx) error {
	var profile taxengine.CompanyProfile
	if err := c.BodyParser(&profile); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	if profile.Revenue == 0 || profile.Canton == "" || profile.LegalForm == "" {
		return utils.BadRequest(c, "Missing required fields: revenue, canton, or legalForm")
	}
	if err := h.engine.ValidateProfile(profile); err != nil {
		if errors.Is(err, taxengine.ErrCantonNotFound) {
			return utils.NotFound(c, "Canton "+profile.Canton+" not found")
		}
		return utils.BadRequest(c, err.Error())
	}

	userID := uint(0)
	if claims, ok := middleware.UserClaims(c); ok {
		userID = claims.UserID
	}

	result, err := h.analysisService.Analyze(c.Context(), userID, profile)
	if err != nil {
		if errors.Is(err, taxengine.ErrCantonNotFound) {
			return utils.NotFound(c, "Canton "+profile.Canton+" not found")
		}
		log.Printf("Tax analysis error: %v", err)
		return utils.InternalError(c, "Internal server error during tax analysis")
	}

	return utils.Success(c, fiber.Map{
		"reference":         result.Reference,
		"healthScore":       result.HealthScore,
		"aiRecommendations": result.AIRecommendations,
		"timestamp":         result.Timestamp,
	})
}

// Compare ranks all cantons for a company profile.
// Required fields: revenue, legalForm; canton is optional.
func (h *CalculatorHandler) Compare(c *fiber.Ctx) error {
	var profile taxengine.CompanyProfile
	if err := c.BodyParser(&profile); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	if profile.Revenue == 0 || profile.LegalForm == "" {
		return utils.BadRequest(c, "Missing required fields: revenue or legalForm")
	}
	if err := h.engine.ValidateProfile(profile); err != nil {
		if errors.Is(err, taxengine.ErrCantonNotFound) {
			return utils.NotFound(c, "Canton "+profile.Canton+" not found")
		}
		return utils.BadRequest(c, err.Error())
	}

	comparison, err := h.analysisService.Compare(c.Context(), profile)
	if err != nil {
		if errors.Is(err, taxengine.ErrCantonNotFound) {
			return utils.NotFound(c, "Canton "+profile.Canton+" not found")
		}
		log.Printf("Canton comparison error: %v", err)
		return utils.InternalError(c, "Internal server error during canton comparison")
	}

	return utils.Success(c, comparison)
}

// TopCantons returns the n cheapest cantons for a profile.
func (h *CalculatorHandler) TopCantons(c *fiber.Ctx) error {
	var profile taxengine.CompanyProfile
	if err := c.BodyParser(&profile); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if profile.Revenue == 0 {
		return utils.BadRequest(c, "Missing required field: revenue")
	}
	if err := h.engine.ValidateProfile(profile); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return utils.BadRequest(c, "limit must be a positive integer")
		}
		limit = parsed
	}

	return utils.Success(c, fiber.Map{
		"cantons": h.engine.TopCantons(profile, limit),
	})
}

// Cantons lists the rate table in canonical order.
func (h *CalculatorHandler) Cantons(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"cantons": h.engine.RateTable().Cantons(),
	})
}

// Canton returns one canton's rate record.
func (h *CalculatorHandler) Canton(c *fiber.Ctx) error {
	code := c.Params("code")
	canton, err := h.engine.RateTable().Canton(code)
	if err != nil {
		return utils.NotFound(c, "Canton "+code+" not found")
	}
	return utils.Success(c, canton)
}
