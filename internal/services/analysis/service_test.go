package analysis

import (
	"context"
	"testing"

	"taxpilot/internal/services/taxengine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecommender struct {
	mock.Mock
}

func (m *MockRecommender) Generate(ctx context.Context, profile taxengine.CompanyProfile, score taxengine.HealthScore, analysis taxengine.SavingsAnalysis) []string {
	args := m.Called(ctx, profile, score, analysis)
	return args.Get(0).([]string)
}

func newTestService(t *testing.T, recommender *MockRecommender) Service {
	t.Helper()
	engine := taxengine.New(taxengine.DefaultRateTable())
	return NewService(engine, recommender, nil, nil)
}

func TestAnalyze(t *testing.T) {
	recommender := new(MockRecommender)
	recommender.On("Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]string{"Consider relocating to ZG"})

	svc := newTestService(t, recommender)

	profile := taxengine.CompanyProfile{
		Name:          "Muster Treuhand AG",
		LegalForm:     taxengine.LegalFormAG,
		Canton:        "ZH",
		Revenue:       1200000,
		Profit:        240000,
		Employees:     6,
		VATRegistered: true,
	}

	result, err := svc.Analyze(context.Background(), 0, profile)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Reference)
	assert.Equal(t, 58, result.HealthScore.Score)
	assert.Equal(t, []string{"Consider relocating to ZG"}, result.AIRecommendations)
	assert.False(t, result.Timestamp.IsZero())

	recommender.AssertExpectations(t)
}

func TestAnalyze_UnknownCanton(t *testing.T) {
	svc := newTestService(t, new(MockRecommender))

	_, err := svc.Analyze(context.Background(), 0, taxengine.CompanyProfile{
		Canton: "XX", Revenue: 100000, Profit: 10000,
	})
	assert.ErrorIs(t, err, taxengine.ErrCantonNotFound)
}

func TestCompare(t *testing.T) {
	svc := newTestService(t, new(MockRecommender))

	t.Run("with current canton", func(t *testing.T) {
		comparison, err := svc.Compare(context.Background(), taxengine.CompanyProfile{
			Canton: "ZH", Revenue: 1200000, Profit: 240000,
		})
		require.NoError(t, err)

		require.Len(t, comparison.Calculations, 26)
		assert.Equal(t, "GE", comparison.Summary.BestCanton)
		assert.InDelta(t, 54804, comparison.Summary.CurrentCantonTax, 0.01)
		assert.InDelta(t, 42220.56, comparison.Summary.BestCantonTax, 0.01)
		assert.InDelta(t, 12583.44, comparison.Summary.PotentialSavings, 0.01)
		assert.Greater(t, comparison.Summary.AverageTax, comparison.Summary.BestCantonTax)

		// Ranked ascending.
		for i := 1; i < len(comparison.Calculations); i++ {
			assert.LessOrEqual(t,
				comparison.Calculations[i-1].TotalTaxBurden,
				comparison.Calculations[i].TotalTaxBurden)
		}
	})

	t.Run("without current canton the best stands in", func(t *testing.T) {
		comparison, err := svc.Compare(context.Background(), taxengine.CompanyProfile{
			Revenue: 1200000, Profit: 240000,
		})
		require.NoError(t, err)

		assert.Equal(t, comparison.Summary.BestCantonTax, comparison.Summary.CurrentCantonTax)
		assert.Zero(t, comparison.Summary.PotentialSavings)
	})

	t.Run("unknown canton is an error", func(t *testing.T) {
		_, err := svc.Compare(context.Background(), taxengine.CompanyProfile{
			Canton: "XX", Revenue: 1200000, Profit: 240000,
		})
		assert.ErrorIs(t, err, taxengine.ErrCantonNotFound)
	})
}
