package featuregate

// FeatureUsage pairs one counted feature's limit with its usage.
type FeatureUsage struct {
	Limit     int  `json:"limit"`
	Usage     int  `json:"usage"`
	Unlimited bool `json:"unlimited"`
}

// Overview summarizes the plan's limits, usage and feature flags. It is
// what the account page renders.
type Overview struct {
	PlanID string `json:"planId"`
	Limits struct {
		Calculations        FeatureUsage  `json:"calculations"`
		SavedProfiles       FeatureUsage  `json:"savedProfiles"`
		CantonComparisons   FeatureUsage  `json:"cantonComparisons"`
		ExpertConsultations *FeatureUsage `json:"expertConsultations"`
	} `json:"limits"`
	Features struct {
		AIRecommendations    bool `json:"aiRecommendations"`
		ComplianceMonitoring bool `json:"complianceMonitoring"`
		PrioritySupport      bool `json:"prioritySupport"`
	} `json:"features"`
}

// LimitsOverview returns the full limits/usage/features snapshot for the
// gate's plan.
func (g *Gate) LimitsOverview() Overview {
	var o Overview
	o.PlanID = g.planID
	o.Limits.Calculations = g.featureUsage(ActionCalculations, g.limits.Calculations)
	o.Limits.SavedProfiles = g.featureUsage(ActionSavedProfiles, g.limits.SavedProfiles)
	o.Limits.CantonComparisons = g.featureUsage(ActionCantonComparisons, g.limits.CantonComparisons)
	if g.limits.ExpertConsultations != nil {
		fu := g.featureUsage(ActionExpertConsultations, *g.limits.ExpertConsultations)
		o.Limits.ExpertConsultations = &fu
	}
	o.Features.AIRecommendations = g.limits.AIRecommendations
	o.Features.ComplianceMonitoring = g.limits.ComplianceMonitoring
	o.Features.PrioritySupport = g.limits.PrioritySupport
	return o
}

func (g *Gate) featureUsage(action string, limit int) FeatureUsage {
	return FeatureUsage{
		Limit:     limit,
		Usage:     g.usage[action],
		Unlimited: limit == Unlimited,
	}
}

// UpgradeSuggestions returns advisory upgrade hints derived from the plan
// and from checks that currently deny. Purely informational, no side
// effects; each category contributes at most one suggestion.
func (g *Gate) UpgradeSuggestions() []string {
	suggestions := []string{}

	if g.planID == PlanFree {
		suggestions = append(suggestions, "Upgrade to Starter for unlimited calculations and AI recommendations")
	}
	if g.planID == PlanStarter {
		suggestions = append(suggestions, "Upgrade to Professional for expert consultations and priority support")
	}

	if !g.CanCalculateTaxes().Allowed {
		suggestions = append(suggestions, "Upgrade for unlimited tax calculations")
	}
	if !g.CanSaveCompanyProfile().Allowed {
		suggestions = append(suggestions, "Upgrade for unlimited company profiles")
	}
	if !g.CanAccessAIRecommendations().Allowed {
		suggestions = append(suggestions, "Upgrade for AI-powered tax optimization recommendations")
	}

	return suggestions
}
