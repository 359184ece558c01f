package featuregate

// Plan identifiers, ordered from least to most capable.
const (
	PlanFree         = "free"
	PlanStarter      = "starter"
	PlanProfessional = "professional"
)

// Unlimited is the sentinel cap meaning no usage limit applies.
const Unlimited = -1

// PlanLimits holds the caps and feature flags of one subscription plan.
// ExpertConsultations is nil for plans without consultation credits.
type PlanLimits struct {
	Calculations         int  `json:"calculations"`
	SavedProfiles        int  `json:"savedProfiles"`
	CantonComparisons    int  `json:"cantonComparisons"`
	ExpertConsultations  *int `json:"expertConsultations,omitempty"`
	AIRecommendations    bool `json:"aiRecommendations"`
	ComplianceMonitoring bool `json:"complianceMonitoring"`
	PrioritySupport      bool `json:"prioritySupport"`
}

var professionalConsultations = 2

var planLimits = map[string]PlanLimits{
	PlanFree: {
		Calculations:      3,
		SavedProfiles:     1,
		CantonComparisons: 1,
	},
	PlanStarter: {
		Calculations:         Unlimited,
		SavedProfiles:        5,
		CantonComparisons:    Unlimited,
		AIRecommendations:    true,
		ComplianceMonitoring: true,
	},
	PlanProfessional: {
		Calculations:         Unlimited,
		SavedProfiles:        Unlimited,
		CantonComparisons:    Unlimited,
		ExpertConsultations:  &professionalConsultations,
		AIRecommendations:    true,
		ComplianceMonitoring: true,
		PrioritySupport:      true,
	},
}

// LimitsFor returns the limits of a plan. Unknown plan ids resolve to the
// free plan so a stale or corrupt plan reference never grants paid features.
func LimitsFor(planID string) PlanLimits {
	if limits, ok := planLimits[planID]; ok {
		return limits
	}
	return planLimits[PlanFree]
}
