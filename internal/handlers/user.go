package handlers

import (
	"errors"

	"taxpilot/internal/middleware"
	"taxpilot/internal/repositories"
	"taxpilot/internal/services/user"
	"taxpilot/internal/utils"
	"taxpilot/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler manages registration and the signed-in user's account.
type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUser creates a new account on the free plan.
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var input user.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Required("email", input.Email)
	v.Email("email", input.Email)
	v.MinLength("password", input.Password, 8)
	v.Required("fullName", input.FullName)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	created, err := h.userService.Register(&input)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return utils.Error(c, fiber.StatusConflict, "Email already registered")
		}
		return utils.InternalError(c, "Failed to register user")
	}

	return utils.Success(c, fiber.Map{
		"id":          created.ID,
		"email":       created.Email,
		"fullName":    created.FullName,
		"companyName": created.CompanyName,
		"canton":      created.Canton,
	})
}

// Me returns the signed-in user's account.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication required")
	}

	u, err := h.userService.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalError(c, "Failed to load user")
	}

	return utils.Success(c, fiber.Map{
		"id":             u.ID,
		"email":          u.Email,
		"fullName":       u.FullName,
		"companyName":    u.CompanyName,
		"swissCompanyId": u.SwissCompanyID,
		"canton":         u.Canton,
		"municipality":   u.Municipality,
		"role":           u.Role,
		"status":         u.Status,
	})
}

// UpdateMe updates the signed-in user's company details.
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication required")
	}

	var input struct {
		FullName       string `json:"fullName"`
		CompanyName    string `json:"companyName"`
		SwissCompanyID string `json:"swissCompanyId"`
		Canton         string `json:"canton"`
		Municipality   string `json:"municipality"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	u, err := h.userService.GetByID(claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to load user")
	}

	if input.FullName != "" {
		u.FullName = input.FullName
	}
	if input.CompanyName != "" {
		u.CompanyName = input.CompanyName
	}
	if input.SwissCompanyID != "" {
		u.SwissCompanyID = input.SwissCompanyID
	}
	if input.Canton != "" {
		u.Canton = input.Canton
	}
	if input.Municipality != "" {
		u.Municipality = input.Municipality
	}

	if err := h.userService.Update(u); err != nil {
		return utils.InternalError(c, "Failed to update user")
	}

	return utils.Success(c, fiber.Map{
		"id":             u.ID,
		"email":          u.Email,
		"fullName":       u.FullName,
		"companyName":    u.CompanyName,
		"swissCompanyId": u.SwissCompanyID,
		"canton":         u.Canton,
		"municipality":   u.Municipality,
	})
}
