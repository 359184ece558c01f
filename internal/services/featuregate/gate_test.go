package featuregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitsFor(t *testing.T) {
	free := LimitsFor(PlanFree)
	assert.Equal(t, 3, free.Calculations)
	assert.Equal(t, 1, free.SavedProfiles)
	assert.Equal(t, 1, free.CantonComparisons)
	assert.Nil(t, free.ExpertConsultations)
	assert.False(t, free.AIRecommendations)

	starter := LimitsFor(PlanStarter)
	assert.Equal(t, Unlimited, starter.Calculations)
	assert.Equal(t, 5, starter.SavedProfiles)
	assert.Equal(t, Unlimited, starter.CantonComparisons)
	assert.Nil(t, starter.ExpertConsultations)
	assert.True(t, starter.AIRecommendations)
	assert.True(t, starter.ComplianceMonitoring)
	assert.False(t, starter.PrioritySupport)

	pro := LimitsFor(PlanProfessional)
	assert.Equal(t, Unlimited, pro.Calculations)
	assert.Equal(t, Unlimited, pro.SavedProfiles)
	require.NotNil(t, pro.ExpertConsultations)
	assert.Equal(t, 2, *pro.ExpertConsultations)
	assert.True(t, pro.PrioritySupport)

	t.Run("unknown plan falls back to free", func(t *testing.T) {
		assert.Equal(t, free, LimitsFor("enterprise-trial"))
		assert.Equal(t, free, LimitsFor(""))
	})
}

func TestGate_CanCalculateTaxes(t *testing.T) {
	tests := []struct {
		name        string
		planID      string
		usage       int
		wantAllowed bool
	}{
		{"free under limit", PlanFree, 2, true},
		{"free at limit", PlanFree, 3, false},
		{"free over limit", PlanFree, 7, false},
		{"starter ignores usage", PlanStarter, 100000, true},
		{"professional ignores usage", PlanProfessional, 100000, true},
		{"unknown plan uses free limit", "gold", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := New(tt.planID, map[string]int{ActionCalculations: tt.usage})
			result := gate.CanCalculateTaxes()
			assert.Equal(t, tt.wantAllowed, result.Allowed)
			if !tt.wantAllowed {
				assert.True(t, result.UpgradeRequired)
				assert.Contains(t, result.Reason, "limit of 3 calculations")
				require.NotNil(t, result.CurrentUsage)
				assert.Equal(t, tt.usage, *result.CurrentUsage)
				require.NotNil(t, result.Limit)
				assert.Equal(t, 3, *result.Limit)
			}
		})
	}
}

func TestGate_UnlimitedAlwaysAllows(t *testing.T) {
	// Even absurd usage values never deny an unlimited feature.
	for _, usage := range []int{-5, 0, 1, 1 << 30} {
		gate := New(PlanStarter, map[string]int{ActionCalculations: usage})
		assert.True(t, gate.CanCalculateTaxes().Allowed, "usage %d", usage)
	}
}

func TestGate_CanSaveCompanyProfile(t *testing.T) {
	gate := New(PlanFree, map[string]int{ActionSavedProfiles: 1})
	result := gate.CanSaveCompanyProfile()
	assert.False(t, result.Allowed)
	assert.Contains(t, result.Reason, "limit of 1 saved company profiles")

	gate = New(PlanStarter, map[string]int{ActionSavedProfiles: 4})
	assert.True(t, gate.CanSaveCompanyProfile().Allowed)

	gate = New(PlanStarter, map[string]int{ActionSavedProfiles: 5})
	assert.False(t, gate.CanSaveCompanyProfile().Allowed)
}

func TestGate_CanCompareCantons(t *testing.T) {
	gate := New(PlanFree, map[string]int{ActionCantonComparisons: 1})
	result := gate.CanCompareCantons()
	assert.False(t, result.Allowed)
	assert.Equal(t, "You've reached your limit of 1 canton comparison per month", result.Reason)

	gate = New(PlanFree, nil)
	assert.True(t, gate.CanCompareCantons().Allowed)
}

func TestGate_BooleanFeatures(t *testing.T) {
	free := New(PlanFree, nil)

	ai := free.CanAccessAIRecommendations()
	assert.False(t, ai.Allowed)
	assert.True(t, ai.UpgradeRequired)
	assert.Equal(t, "AI recommendations are only available with paid plans", ai.Reason)

	compliance := free.CanAccessComplianceMonitoring()
	assert.False(t, compliance.Allowed)
	assert.True(t, compliance.UpgradeRequired)

	starter := New(PlanStarter, nil)
	assert.True(t, starter.CanAccessAIRecommendations().Allowed)
	assert.True(t, starter.CanAccessComplianceMonitoring().Allowed)
	assert.False(t, starter.HasPrioritySupport())

	pro := New(PlanProfessional, nil)
	assert.True(t, pro.HasPrioritySupport())
}

func TestGate_CanUseExpertConsultation(t *testing.T) {
	t.Run("plan without credits requires upgrade", func(t *testing.T) {
		for _, plan := range []string{PlanFree, PlanStarter} {
			result := New(plan, nil).CanUseExpertConsultation()
			assert.False(t, result.Allowed, plan)
			assert.True(t, result.UpgradeRequired, plan)
			assert.Equal(t, "Expert consultations are only available with Professional plan", result.Reason)
		}
	})

	t.Run("credits available", func(t *testing.T) {
		result := New(PlanProfessional, map[string]int{ActionExpertConsultations: 1}).CanUseExpertConsultation()
		assert.True(t, result.Allowed)
		require.NotNil(t, result.CurrentUsage)
		assert.Equal(t, 1, *result.CurrentUsage)
		require.NotNil(t, result.Limit)
		assert.Equal(t, 2, *result.Limit)
	})

	t.Run("credits exhausted denies without upgrade hint", func(t *testing.T) {
		result := New(PlanProfessional, map[string]int{ActionExpertConsultations: 2}).CanUseExpertConsultation()
		assert.False(t, result.Allowed)
		assert.False(t, result.UpgradeRequired, "exhausted credits reset monthly, upgrading would not help")
		assert.Equal(t, "You've used all 2 expert consultation credits this month", result.Reason)
	})
}

func TestGate_LimitsOverview(t *testing.T) {
	gate := New(PlanProfessional, map[string]int{
		ActionCalculations:        12,
		ActionExpertConsultations: 1,
	})

	o := gate.LimitsOverview()
	assert.Equal(t, PlanProfessional, o.PlanID)
	assert.True(t, o.Limits.Calculations.Unlimited)
	assert.Equal(t, 12, o.Limits.Calculations.Usage)
	require.NotNil(t, o.Limits.ExpertConsultations)
	assert.Equal(t, 1, o.Limits.ExpertConsultations.Usage)
	assert.Equal(t, 2, o.Limits.ExpertConsultations.Limit)
	assert.True(t, o.Features.PrioritySupport)

	free := New(PlanFree, nil).LimitsOverview()
	assert.Nil(t, free.Limits.ExpertConsultations)
	assert.False(t, free.Limits.Calculations.Unlimited)
	assert.Equal(t, 3, free.Limits.Calculations.Limit)
}

func TestGate_UpgradeSuggestions(t *testing.T) {
	t.Run("free plan under limits", func(t *testing.T) {
		suggestions := New(PlanFree, nil).UpgradeSuggestions()
		assert.Contains(t, suggestions, "Upgrade to Starter for unlimited calculations and AI recommendations")
		assert.Contains(t, suggestions, "Upgrade for AI-powered tax optimization recommendations")
	})

	t.Run("free plan exhausted", func(t *testing.T) {
		suggestions := New(PlanFree, map[string]int{
			ActionCalculations:  3,
			ActionSavedProfiles: 1,
		}).UpgradeSuggestions()
		assert.Contains(t, suggestions, "Upgrade for unlimited tax calculations")
		assert.Contains(t, suggestions, "Upgrade for unlimited company profiles")
	})

	t.Run("professional has none", func(t *testing.T) {
		assert.Empty(t, New(PlanProfessional, nil).UpgradeSuggestions())
	})
}
