// Package billing wires plan upgrades through Stripe Checkout and keeps
// the local subscription mirror in sync.
package billing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"taxpilot/internal/models"
	"taxpilot/internal/repositories"
	"taxpilot/internal/services/featuregate"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
	"github.com/stripe/stripe-go/v72/sub"
)

// CheckoutResult is handed back to the client to redirect into Stripe.
type CheckoutResult struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// Service creates checkout sessions and applies subscription updates.
type Service interface {
	CreateCheckoutSession(userID uint, planID, origin string) (*CheckoutResult, error)
	ApplySubscription(userID uint, planID, customerID, subscriptionID, status string, periodStart, periodEnd time.Time) error
	HandleWebhookEvent(event stripe.Event) error
}

type service struct {
	subs      repositories.SubscriptionRepository
	secretKey string
}

// NewService creates a billing service. The Stripe secret key is set on
// the global stripe client at construction, matching the SDK's usage model.
func NewService(subs repositories.SubscriptionRepository, secretKey string) Service {
	if subs == nil {
		panic("subscription repository is required")
	}
	stripe.Key = secretKey
	return &service{
		subs:      subs,
		secretKey: secretKey,
	}
}

func (s *service) CreateCheckoutSession(userID uint, planID, origin string) (*CheckoutResult, error) {
	if s.secretKey == "" {
		return nil, ErrMissingStripeKey
	}

	plan, ok := Plans()[planID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlan, planID)
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(plan.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:               stripe.String(origin + "/welcome"),
		CancelURL:                stripe.String(origin + "/pricing?canceled=true"),
		AllowPromotionCodes:      stripe.Bool(true),
		BillingAddressCollection: stripe.String("required"),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(TrialPeriodDays),
			Metadata: map[string]string{
				"planId": planID,
				"userId": fmt.Sprintf("%d", userID),
			},
		},
	}
	params.AddMetadata("planId", planID)
	params.AddMetadata("userId", fmt.Sprintf("%d", userID))

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	return &CheckoutResult{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// ApplySubscription mirrors a provider-side subscription change locally.
// Called from the webhook handler after checkout completes or a
// subscription is updated or canceled.
func (s *service) ApplySubscription(userID uint, planID, customerID, subscriptionID, status string, periodStart, periodEnd time.Time) error {
	return s.subs.Upsert(&models.Subscription{
		UserID:               userID,
		StripeCustomerID:     customerID,
		StripeSubscriptionID: subscriptionID,
		PlanID:               planID,
		Status:               status,
		CurrentPeriodStart:   periodStart,
		CurrentPeriodEnd:     periodEnd,
	})
}

// HandleWebhookEvent dispatches a verified Stripe event into the local
// subscription mirror. Event types that do not affect entitlements are
// acknowledged without action.
func (s *service) HandleWebhookEvent(event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("decoding checkout session: %w", err)
		}
		return s.applyCheckoutCompleted(&sess)
	case "customer.subscription.updated", "customer.subscription.deleted":
		var stripeSub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &stripeSub); err != nil {
			return fmt.Errorf("decoding subscription: %w", err)
		}
		return s.applySubscriptionChange(&stripeSub)
	}
	return nil
}

func (s *service) applyCheckoutCompleted(sess *stripe.CheckoutSession) error {
	if sess.Subscription == nil {
		return nil
	}

	// The session payload carries only the subscription id, so fetch
	// the full object to read plan, status and period boundaries.
	stripeSub := sess.Subscription
	if stripeSub.Items == nil || len(stripeSub.Items.Data) == 0 {
		full, err := sub.Get(stripeSub.ID, nil)
		if err != nil {
			return fmt.Errorf("fetching subscription %s: %v", stripeSub.ID, err)
		}
		stripeSub = full
	}

	userID, err := checkoutUserID(sess, stripeSub)
	if err != nil {
		return err
	}
	return s.mirrorSubscription(userID, stripeSub)
}

func (s *service) applySubscriptionChange(stripeSub *stripe.Subscription) error {
	userID, err := s.resolveSubscriber(stripeSub)
	if err != nil {
		return err
	}
	return s.mirrorSubscription(userID, stripeSub)
}

// resolveSubscriber maps a Stripe subscription back to a local user,
// preferring the existing mirror row and falling back to the userId
// metadata stamped at checkout.
func (s *service) resolveSubscriber(stripeSub *stripe.Subscription) (uint, error) {
	if existing, err := s.subs.GetByStripeSubscriptionID(stripeSub.ID); err == nil {
		return existing.UserID, nil
	}
	if id, ok := parseUserID(stripeSub.Metadata["userId"]); ok {
		return id, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownSubscriber, stripeSub.ID)
}

func checkoutUserID(sess *stripe.CheckoutSession, stripeSub *stripe.Subscription) (uint, error) {
	if id, ok := parseUserID(sess.Metadata["userId"]); ok {
		return id, nil
	}
	if id, ok := parseUserID(stripeSub.Metadata["userId"]); ok {
		return id, nil
	}
	return 0, fmt.Errorf("%w: session %s", ErrUnknownSubscriber, sess.ID)
}

func parseUserID(raw string) (uint, bool) {
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (s *service) mirrorSubscription(userID uint, stripeSub *stripe.Subscription) error {
	planID := featuregate.PlanFree
	if stripeSub.Items != nil && len(stripeSub.Items.Data) > 0 && stripeSub.Items.Data[0].Price != nil {
		planID = PlanIDForPrice(stripeSub.Items.Data[0].Price.ID)
	}

	// Trialing subscriptions entitle paid features from day one.
	status := string(stripeSub.Status)
	if stripeSub.Status == stripe.SubscriptionStatusTrialing {
		status = models.SubscriptionActive
	}

	customerID := ""
	if stripeSub.Customer != nil {
		customerID = stripeSub.Customer.ID
	}

	return s.ApplySubscription(
		userID,
		planID,
		customerID,
		stripeSub.ID,
		status,
		time.Unix(stripeSub.CurrentPeriodStart, 0),
		time.Unix(stripeSub.CurrentPeriodEnd, 0),
	)
}
