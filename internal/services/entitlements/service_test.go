package entitlements

import (
	"context"
	"testing"
	"time"

	"taxpilot/internal/models"
	"taxpilot/internal/repositories"
	"taxpilot/internal/services/featuregate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) GetByUserID(userID uint) (*models.Subscription, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) GetByStripeSubscriptionID(id string) (*models.Subscription, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Upsert(sub *models.Subscription) error {
	args := m.Called(sub)
	return args.Error(0)
}

type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) Record(log *models.UsageLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *MockUsageRepository) CountSince(userID uint, action string, since time.Time) (int64, error) {
	args := m.Called(userID, action, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUsageRepository) ListSince(userID uint, since time.Time) ([]models.UsageLog, error) {
	args := m.Called(userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UsageLog), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(profile *models.CompanyProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(id uint) (*models.CompanyProfile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyProfile), args.Error(1)
}

func (m *MockProfileRepository) ListByUser(userID uint) ([]*models.CompanyProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CompanyProfile), args.Error(1)
}

func (m *MockProfileRepository) CountByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) Update(profile *models.CompanyProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func newTestService(subs *MockSubscriptionRepository, usage *MockUsageRepository, profiles *MockProfileRepository) *service {
	return &service{
		subs:     subs,
		usage:    usage,
		profiles: profiles,
		now:      func() time.Time { return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC) },
	}
}

func TestGateForUsesLiveProfileCount(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	usage := new(MockUsageRepository)
	profiles := new(MockProfileRepository)

	subs.On("GetByUserID", uint(1)).Return(nil, repositories.ErrSubscriptionNotFound)
	monthStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	usage.On("CountSince", uint(1), featuregate.ActionCalculations, monthStart).Return(int64(2), nil)
	usage.On("CountSince", uint(1), featuregate.ActionCantonComparisons, monthStart).Return(int64(0), nil)
	usage.On("CountSince", uint(1), featuregate.ActionExpertConsultations, monthStart).Return(int64(0), nil)
	profiles.On("CountByUser", uint(1)).Return(int64(1), nil)

	svc := newTestService(subs, usage, profiles)
	gate, err := svc.GateFor(context.Background(), 1)
	require.NoError(t, err)

	// Free plan allows a single saved profile, and one already exists.
	result := gate.CanSaveCompanyProfile()
	assert.False(t, result.Allowed)

	// Saved profiles are never counted from the usage logs.
	usage.AssertNotCalled(t, "CountSince", uint(1), featuregate.ActionSavedProfiles, monthStart)
	profiles.AssertExpectations(t)
}

func TestGateForDeletedProfileFreesSlot(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	usage := new(MockUsageRepository)
	profiles := new(MockProfileRepository)

	subs.On("GetByUserID", uint(1)).Return(nil, repositories.ErrSubscriptionNotFound)
	monthStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	usage.On("CountSince", uint(1), mock.Anything, monthStart).Return(int64(0), nil)

	// Even with profile creations logged this month, a live count of
	// zero means the slot is available again.
	profiles.On("CountByUser", uint(1)).Return(int64(0), nil)

	svc := newTestService(subs, usage, profiles)
	gate, err := svc.GateFor(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, gate.CanSaveCompanyProfile().Allowed)
}

func TestGateForActiveSubscriptionPlan(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	usage := new(MockUsageRepository)
	profiles := new(MockProfileRepository)

	subs.On("GetByUserID", uint(4)).Return(&models.Subscription{
		UserID:           4,
		PlanID:           featuregate.PlanStarter,
		Status:           models.SubscriptionActive,
		CurrentPeriodEnd: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
	}, nil)
	usage.On("CountSince", uint(4), mock.Anything, mock.Anything).Return(int64(0), nil)
	profiles.On("CountByUser", uint(4)).Return(int64(3), nil)

	svc := newTestService(subs, usage, profiles)
	gate, err := svc.GateFor(context.Background(), 4)
	require.NoError(t, err)

	// Starter allows five saved profiles; three exist.
	assert.True(t, gate.CanSaveCompanyProfile().Allowed)
	assert.True(t, gate.CanCalculateTaxes().Allowed)
}

func TestUsageLogsMonthToDate(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	usage := new(MockUsageRepository)
	profiles := new(MockProfileRepository)

	monthStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	logs := []models.UsageLog{
		{UserID: 1, Action: featuregate.ActionCalculations},
		{UserID: 1, Action: featuregate.ActionCalculations},
		{UserID: 1, Action: featuregate.ActionCantonComparisons},
	}
	usage.On("ListSince", uint(1), monthStart).Return(logs, nil)

	svc := newTestService(subs, usage, profiles)
	got, err := svc.UsageLogs(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 3)

	counters := featuregate.UsageFromLogs(got)
	assert.Equal(t, 2, counters[featuregate.ActionCalculations])
	assert.Equal(t, 1, counters[featuregate.ActionCantonComparisons])
}
