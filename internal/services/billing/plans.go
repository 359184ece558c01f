package billing

import (
	"taxpilot/internal/config"
	"taxpilot/internal/services/featuregate"
)

// Plan describes a purchasable subscription plan and its Stripe price.
type Plan struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PriceID  string `json:"-"`
	Amount   int64  `json:"amount"` // cents
	Currency string `json:"currency"`
	Interval string `json:"interval"`
}

// TrialPeriodDays is the free trial applied to every new subscription.
const TrialPeriodDays = 14

// Plans returns the purchasable plans with price ids resolved from the
// environment. The free plan is not listed; it is the default entitlement.
func Plans() map[string]Plan {
	return map[string]Plan{
		featuregate.PlanStarter: {
			ID:       featuregate.PlanStarter,
			Name:     "Starter Plan",
			PriceID:  config.GetEnv("STRIPE_STARTER_PRICE_ID", "price_starter"),
			Amount:   19700, // CHF 197.00
			Currency: "chf",
			Interval: "month",
		},
		featuregate.PlanProfessional: {
			ID:       featuregate.PlanProfessional,
			Name:     "Professional Plan",
			PriceID:  config.GetEnv("STRIPE_PROFESSIONAL_PRICE_ID", "price_professional"),
			Amount:   49700, // CHF 497.00
			Currency: "chf",
			Interval: "month",
		},
	}
}

// PlanIDForPrice maps a Stripe price id back to the internal plan id.
// Unknown prices resolve to the free plan.
func PlanIDForPrice(priceID string) string {
	for id, plan := range Plans() {
		if plan.PriceID == priceID {
			return id
		}
	}
	return featuregate.PlanFree
}
