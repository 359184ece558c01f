package featuregate

import (
	"time"

	"taxpilot/internal/models"
)

// IsSubscriptionActive reports whether a subscription currently entitles
// its owner to a paid plan.
func IsSubscriptionActive(sub *models.Subscription, now time.Time) bool {
	if sub == nil {
		return false
	}
	return sub.Status == models.SubscriptionActive && sub.CurrentPeriodEnd.After(now)
}

// PlanIDFor resolves the effective plan id of a subscription. Missing or
// inactive subscriptions resolve to the free plan.
func PlanIDFor(sub *models.Subscription, now time.Time) string {
	if !IsSubscriptionActive(sub, now) {
		return PlanFree
	}
	return sub.PlanID
}

// UsageFromLogs aggregates usage logs into per-action counters.
func UsageFromLogs(logs []models.UsageLog) map[string]int {
	usage := make(map[string]int)
	for _, l := range logs {
		usage[l.Action]++
	}
	return usage
}
