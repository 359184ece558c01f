// Package entitlements resolves a user's effective plan and month-to-date
// usage into a feature gate. The gate itself is pure; this service owns
// the I/O around it: subscription lookup, usage counting and the Redis
// counter cache.
package entitlements

import (
	"context"
	"log"
	"time"

	"taxpilot/internal/models"
	"taxpilot/internal/repositories"
	"taxpilot/internal/repositories/cache"
	"taxpilot/internal/services/featuregate"

	"github.com/google/uuid"
)

// Actions whose monthly log count feeds the gate. Saved profiles are
// gated on the live profile count instead, so deleting one frees a slot.
var monthlyActions = []string{
	featuregate.ActionCalculations,
	featuregate.ActionCantonComparisons,
	featuregate.ActionExpertConsultations,
}

// Service builds feature gates and records gated usage.
type Service interface {
	GateFor(ctx context.Context, userID uint) (*featuregate.Gate, error)
	RecordUsage(ctx context.Context, userID uint, action string) (string, error)
	UsageLogs(ctx context.Context, userID uint) ([]models.UsageLog, error)
}

type service struct {
	subs     repositories.SubscriptionRepository
	usage    repositories.UsageRepository
	profiles repositories.CompanyProfileRepository
	cache    *cache.CacheService
	now      func() time.Time
}

// NewService creates an entitlements service. The cache is optional; a nil
// cache falls back to database counts on every request.
func NewService(subs repositories.SubscriptionRepository, usage repositories.UsageRepository, profiles repositories.CompanyProfileRepository, cacheSvc *cache.CacheService) Service {
	if subs == nil {
		panic("subscription repository is required")
	}
	if usage == nil {
		panic("usage repository is required")
	}
	if profiles == nil {
		panic("company profile repository is required")
	}
	return &service{
		subs:     subs,
		usage:    usage,
		profiles: profiles,
		cache:    cacheSvc,
		now:      time.Now,
	}
}

// GateFor resolves the user's plan and usage into a per-request gate.
// A missing subscription row is not an error; it resolves to the free plan.
func (s *service) GateFor(ctx context.Context, userID uint) (*featuregate.Gate, error) {
	now := s.now()

	sub, err := s.subs.GetByUserID(userID)
	if err != nil && err != repositories.ErrSubscriptionNotFound {
		return nil, err
	}
	planID := featuregate.PlanIDFor(sub, now)

	usage := make(map[string]int, len(monthlyActions)+1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for _, action := range monthlyActions {
		count, err := s.countUsage(ctx, userID, action, monthStart)
		if err != nil {
			return nil, err
		}
		usage[action] = count
	}

	profileCount, err := s.profiles.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	usage[featuregate.ActionSavedProfiles] = int(profileCount)

	return featuregate.New(planID, usage), nil
}

// UsageLogs returns the user's month-to-date gated actions, newest first.
func (s *service) UsageLogs(_ context.Context, userID uint) ([]models.UsageLog, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return s.usage.ListSince(userID, monthStart)
}

// RecordUsage logs one gated action and bumps the cached counter. Returns
// the log's external reference id.
func (s *service) RecordUsage(ctx context.Context, userID uint, action string) (string, error) {
	reference := uuid.NewString()
	if err := s.usage.Record(&models.UsageLog{
		UserID:    userID,
		Action:    action,
		Reference: reference,
	}); err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.IncrementUsage(ctx, userID, action, s.now()); err != nil {
			// Counter cache is best effort; the database stays authoritative.
			log.Printf("failed to bump usage counter for user %d: %v", userID, err)
		}
	}
	return reference, nil
}

func (s *service) countUsage(ctx context.Context, userID uint, action string, monthStart time.Time) (int, error) {
	if s.cache != nil {
		if count, ok, err := s.cache.GetUsage(ctx, userID, action, monthStart); err == nil && ok {
			return count, nil
		}
	}

	count, err := s.usage.CountSince(userID, action, monthStart)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.SetUsage(ctx, userID, action, monthStart, int(count)); err != nil {
			log.Printf("failed to prime usage counter for user %d: %v", userID, err)
		}
	}
	return int(count), nil
}
