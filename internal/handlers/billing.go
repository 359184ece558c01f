package handlers

import (
	"errors"
	"log"

	"taxpilot/internal/config"
	"taxpilot/internal/middleware"
	"taxpilot/internal/services/billing"
	"taxpilot/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v72/webhook"
)

// BillingHandler exposes plan listing and Stripe checkout.
type BillingHandler struct {
	billingService billing.Service
}

func NewBillingHandler(billingService billing.Service) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Plans lists the purchasable plans.
func (h *BillingHandler) Plans(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{"plans": billing.Plans()})
}

type checkoutRequest struct {
	PlanID string `json:"planId"`
}

// CreateCheckout opens a Stripe Checkout session for a plan upgrade.
func (h *BillingHandler) CreateCheckout(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication required")
	}

	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if req.PlanID == "" {
		return utils.BadRequest(c, "Missing required field: planId")
	}

	origin := c.Get("Origin")
	if origin == "" {
		origin = c.BaseURL()
	}

	result, err := h.billingService.CreateCheckoutSession(claims.UserID, req.PlanID, origin)
	if err != nil {
		if errors.Is(err, billing.ErrUnknownPlan) {
			return utils.BadRequest(c, "Unknown plan: "+req.PlanID)
		}
		log.Printf("Checkout session error: %v", err)
		return utils.InternalError(c, "Failed to create checkout session")
	}

	return utils.Success(c, result)
}

// Webhook receives Stripe events and syncs the subscription mirror.
// The endpoint is public; authenticity comes from the signature check.
func (h *BillingHandler) Webhook(c *fiber.Ctx) error {
	secret := config.GetEnv("STRIPE_WEBHOOK_SECRET", "")
	if secret == "" {
		log.Printf("Webhook received but STRIPE_WEBHOOK_SECRET is not set")
		return utils.InternalError(c, "Webhook not configured")
	}

	event, err := webhook.ConstructEvent(c.Body(), c.Get("Stripe-Signature"), secret)
	if err != nil {
		return utils.BadRequest(c, "Invalid webhook signature")
	}

	if err := h.billingService.HandleWebhookEvent(event); err != nil {
		log.Printf("Webhook event %s (%s) failed: %v", event.ID, event.Type, err)
		return utils.InternalError(c, "Failed to process webhook event")
	}

	return utils.Success(c, fiber.Map{"received": true})
}
