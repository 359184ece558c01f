package taxengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSavings(t *testing.T) {
	engine := testEngine(t)
	profile := CompanyProfile{Revenue: 1200000, Profit: 240000}

	t.Run("expensive current canton", func(t *testing.T) {
		analysis, err := engine.AnalyzeSavings(profile, "ZH")
		require.NoError(t, err)

		assert.Equal(t, "GE", analysis.BestCanton)
		assert.InDelta(t, 54804, analysis.CurrentTax, 0.01)
		assert.InDelta(t, 42220.56, analysis.BestTax, 0.01)
		assert.InDelta(t, 12583.44, analysis.Savings, 0.01)
	})

	t.Run("already in the best canton", func(t *testing.T) {
		analysis, err := engine.AnalyzeSavings(profile, "GE")
		require.NoError(t, err)

		assert.Equal(t, "GE", analysis.BestCanton)
		assert.Zero(t, analysis.Savings)
		assert.Equal(t, analysis.CurrentTax, analysis.BestTax)
	})

	t.Run("unknown current canton", func(t *testing.T) {
		_, err := engine.AnalyzeSavings(profile, "XX")
		assert.ErrorIs(t, err, ErrCantonNotFound)
	})

	t.Run("savings never negative", func(t *testing.T) {
		for _, c := range engine.RateTable().Cantons() {
			analysis, err := engine.AnalyzeSavings(profile, c.Code)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, analysis.Savings, 0.0, "canton %s", c.Code)
		}
	})
}

func TestAnalyzeSavings_TieResolvesToLowestCode(t *testing.T) {
	table, err := NewRateTable([]CantonRates{
		{Code: "CC", CorporateIncomeTaxRate: 5, MunicipalMultiplier: 1, CapitalTaxRate: 0.001, FederalTaxRate: 8.5},
		{Code: "AA", CorporateIncomeTaxRate: 5, MunicipalMultiplier: 1, CapitalTaxRate: 0.001, FederalTaxRate: 8.5},
		{Code: "BB", CorporateIncomeTaxRate: 5, MunicipalMultiplier: 1, CapitalTaxRate: 0.001, FederalTaxRate: 8.5},
	})
	require.NoError(t, err)

	analysis, err := New(table).AnalyzeSavings(CompanyProfile{Revenue: 100000, Profit: 50000}, "CC")
	require.NoError(t, err)
	assert.Equal(t, "AA", analysis.BestCanton)
	assert.Zero(t, analysis.Savings)
}
