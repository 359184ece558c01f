package handlers

import (
	"errors"
	"strconv"

	"taxpilot/internal/middleware"
	"taxpilot/internal/models"
	"taxpilot/internal/repositories"
	"taxpilot/internal/services/taxengine"
	"taxpilot/internal/utils"
	"taxpilot/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler manages saved company profiles.
type ProfileHandler struct {
	profiles repositories.CompanyProfileRepository
}

func NewProfileHandler(profiles repositories.CompanyProfileRepository) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type companyProfileRequest struct {
	Name          string  `json:"name"`
	LegalForm     string  `json:"legalForm"`
	Canton        string  `json:"canton"`
	Revenue       float64 `json:"revenue"`
	Profit        float64 `json:"profit"`
	Employees     int     `json:"employees"`
	Industry      string  `json:"industry"`
	VATRegistered bool    `json:"vatRegistered"`
}

func (r *companyProfileRequest) toEngineProfile() taxengine.CompanyProfile {
	return taxengine.CompanyProfile{
		Name:          r.Name,
		LegalForm:     taxengine.LegalForm(r.LegalForm),
		Canton:        r.Canton,
		Revenue:       r.Revenue,
		Profit:        r.Profit,
		Employees:     r.Employees,
		Industry:      r.Industry,
		VATRegistered: r.VATRegistered,
	}
}

// Create saves a company profile for the signed-in user.
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication required")
	}

	var req companyProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	engineProfile := req.toEngineProfile()
	v := validation.New()
	v.CompanyProfile(&engineProfile)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	profile := &models.CompanyProfile{
		UserID:        claims.UserID,
		Name:          req.Name,
		LegalForm:     req.LegalForm,
		Canton:        req.Canton,
		Revenue:       req.Revenue,
		Profit:        req.Profit,
		Employees:     req.Employees,
		Industry:      req.Industry,
		VATRegistered: req.VATRegistered,
	}
	if err := h.profiles.Create(profile); err != nil {
		return utils.InternalError(c, "Failed to save company profile")
	}

	return utils.Success(c, profile)
}

// List returns the signed-in user's saved profiles, newest first.
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication required")
	}

	profiles, err := h.profiles.ListByUser(claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to load company profiles")
	}
	return utils.Success(c, fiber.Map{"profiles": profiles})
}

// Get returns one saved profile owned by the signed-in user.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication required")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid profile ID")
	}

	profile, err := h.profiles.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return utils.NotFound(c, "Company profile not found")
		}
		return utils.InternalError(c, "Failed to load company profile")
	}
	if profile.UserID != claims.UserID {
		return utils.NotFound(c, "Company profile not found")
	}

	return utils.Success(c, profile)
}

// Update overwrites a saved profile owned by the signed-in user.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication required")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid profile ID")
	}

	profile, err := h.profiles.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return utils.NotFound(c, "Company profile not found")
		}
		return utils.InternalError(c, "Failed to load company profile")
	}
	if profile.UserID != claims.UserID {
		return utils.NotFound(c, "Company profile not found")
	}

	var req companyProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	engineProfile := req.toEngineProfile()
	v := validation.New()
	v.CompanyProfile(&engineProfile)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	profile.Name = req.Name
	profile.LegalForm = req.LegalForm
	profile.Canton = req.Canton
	profile.Revenue = req.Revenue
	profile.Profit = req.Profit
	profile.Employees = req.Employees
	profile.Industry = req.Industry
	profile.VATRegistered = req.VATRegistered

	if err := h.profiles.Update(profile); err != nil {
		return utils.InternalError(c, "Failed to update company profile")
	}
	return utils.Success(c, profile)
}

// Delete removes a saved profile owned by the signed-in user.
func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication required")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid profile ID")
	}

	profile, err := h.profiles.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return utils.NotFound(c, "Company profile not found")
		}
		return utils.InternalError(c, "Failed to load company profile")
	}
	if profile.UserID != claims.UserID {
		return utils.NotFound(c, "Company profile not found")
	}

	if err := h.profiles.Delete(profile.ID); err != nil {
		return utils.InternalError(c, "Failed to delete company profile")
	}
	return utils.Success(c, fiber.Map{"deleted": true})
}
