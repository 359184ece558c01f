// Package featuregate decides whether a subscription plan permits an
// action given the caller's month-to-date usage. The gate is constructed
// per request from a plan id and explicit usage counters; it holds no
// process-wide state and performs no I/O.
package featuregate

import "fmt"

// Usage counter actions
const (
	ActionCalculations        = "calculations"
	ActionSavedProfiles       = "savedProfiles"
	ActionCantonComparisons   = "cantonComparisons"
	ActionExpertConsultations = "expertConsultations"
)

// Result is the outcome of one gate check.
type Result struct {
	Allowed         bool   `json:"allowed"`
	Reason          string `json:"reason,omitempty"`
	UpgradeRequired bool   `json:"upgradeRequired,omitempty"`
	CurrentUsage    *int   `json:"currentUsage,omitempty"`
	Limit           *int   `json:"limit,omitempty"`
}

// Gate checks plan entitlements against usage counters.
type Gate struct {
	planID string
	limits PlanLimits
	usage  map[string]int
}

// New creates a gate for a plan id and usage counter map. Unknown plan ids
// fall back to the free plan; a nil usage map counts as zero usage.
func New(planID string, usage map[string]int) *Gate {
	if planID == "" {
		planID = PlanFree
	}
	if usage == nil {
		usage = map[string]int{}
	}
	return &Gate{
		planID: planID,
		limits: LimitsFor(planID),
		usage:  usage,
	}
}

// PlanID returns the plan id the gate was constructed with.
func (g *Gate) PlanID() string {
	return g.planID
}

// Limits returns the resolved plan limits.
func (g *Gate) Limits() PlanLimits {
	return g.limits
}

// CanCalculateTaxes checks the monthly tax calculation allowance.
func (g *Gate) CanCalculateTaxes() Result {
	return g.checkCounted(ActionCalculations, g.limits.Calculations,
		func(limit int) string {
			return fmt.Sprintf("You've reached your limit of %d calculations per month", limit)
		})
}

// CanSaveCompanyProfile checks the saved company profile allowance.
func (g *Gate) CanSaveCompanyProfile() Result {
	return g.checkCounted(ActionSavedProfiles, g.limits.SavedProfiles,
		func(limit int) string {
			return fmt.Sprintf("You've reached your limit of %d saved company profiles", limit)
		})
}

// CanCompareCantons checks the monthly canton comparison allowance.
func (g *Gate) CanCompareCantons() Result {
	return g.checkCounted(ActionCantonComparisons, g.limits.CantonComparisons,
		func(limit int) string {
			plural := "s"
			if limit == 1 {
				plural = ""
			}
			return fmt.Sprintf("You've reached your limit of %d canton comparison%s per month", limit, plural)
		})
}

// CanAccessAIRecommendations checks the AI recommendation feature flag.
// Usage is irrelevant for boolean-gated features.
func (g *Gate) CanAccessAIRecommendations() Result {
	if !g.limits.AIRecommendations {
		return Result{
			Allowed:         false,
			Reason:          "AI recommendations are only available with paid plans",
			UpgradeRequired: true,
		}
	}
	return Result{Allowed: true}
}

// CanAccessComplianceMonitoring checks the compliance monitoring flag.
func (g *Gate) CanAccessComplianceMonitoring() Result {
	if !g.limits.ComplianceMonitoring {
		return Result{
			Allowed:         false,
			Reason:          "Compliance monitoring is only available with paid plans",
			UpgradeRequired: true,
		}
	}
	return Result{Allowed: true}
}

// CanUseExpertConsultation checks consultation credits. Plans without a
// consultation cap deny with an upgrade hint; plans with a cap deny on
// exhaustion without one, since the subscriber only has to wait for the
// monthly reset.
func (g *Gate) CanUseExpertConsultation() Result {
	if g.limits.ExpertConsultations == nil {
		return Result{
			Allowed:         false,
			Reason:          "Expert consultations are only available with Professional plan",
			UpgradeRequired: true,
		}
	}

	limit := *g.limits.ExpertConsultations
	usage := g.usage[ActionExpertConsultations]
	if usage >= limit {
		return Result{
			Allowed:         false,
			Reason:          fmt.Sprintf("You've used all %d expert consultation credits this month", limit),
			UpgradeRequired: false,
			CurrentUsage:    &usage,
			Limit:           &limit,
		}
	}
	return Result{Allowed: true, CurrentUsage: &usage, Limit: &limit}
}

// HasPrioritySupport reports whether the plan includes priority support.
func (g *Gate) HasPrioritySupport() bool {
	return g.limits.PrioritySupport
}

// checkCounted applies the usage-vs-limit rule shared by all counted
// features: -1 always allows, usage == limit denies.
func (g *Gate) checkCounted(action string, limit int, reason func(int) string) Result {
	if limit == Unlimited {
		return Result{Allowed: true}
	}

	usage := g.usage[action]
	if usage >= limit {
		return Result{
			Allowed:         false,
			Reason:          reason(limit),
			UpgradeRequired: true,
			CurrentUsage:    &usage,
			Limit:           &limit,
		}
	}
	return Result{Allowed: true, CurrentUsage: &usage, Limit: &limit}
}
