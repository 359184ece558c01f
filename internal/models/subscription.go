package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription statuses
const (
	SubscriptionActive     = "active"
	SubscriptionCanceled   = "canceled"
	SubscriptionPastDue    = "past_due"
	SubscriptionUnpaid     = "unpaid"
	SubscriptionIncomplete = "incomplete"
)

// Subscription mirrors the billing provider's subscription state.
// PlanID is the internal plan identifier (free/starter/professional).
type Subscription struct {
	gorm.Model
	UserID               uint   `gorm:"uniqueIndex;not null"`
	StripeCustomerID     string `gorm:"index"`
	StripeSubscriptionID string `gorm:"index"`
	PlanID               string `gorm:"not null;default:'free'"`
	Status               string `gorm:"not null;default:'incomplete'"`
	CurrentPeriodStart   time.Time
	CurrentPeriodEnd     time.Time
	CancelAtPeriodEnd    bool
}

// UsageLog records one gated action. Monthly usage counters are derived
// by counting logs inside the current period.
type UsageLog struct {
	gorm.Model
	UserID    uint   `gorm:"index:idx_usage_user_action;not null"`
	Action    string `gorm:"index:idx_usage_user_action;not null"`
	Reference string `gorm:"index"` // external uuid of the triggering request
}
