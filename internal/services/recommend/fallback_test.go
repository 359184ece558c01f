package recommend

import (
	"context"
	"testing"

	"taxpilot/internal/services/taxengine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback(t *testing.T) {
	t.Run("large savings trigger relocation", func(t *testing.T) {
		recs := Fallback(
			taxengine.CompanyProfile{LegalForm: taxengine.LegalFormGmbH, Revenue: 2000000, Profit: 400000, VATRegistered: true},
			taxengine.SavingsAnalysis{Savings: 25000, BestCanton: "ZG"},
		)
		require.NotEmpty(t, recs)
		assert.Contains(t, recs[0], "Canton Relocation")
		assert.Contains(t, recs[0], "ZG")
		assert.Contains(t, recs[0], "25'000")
	})

	t.Run("small savings skip relocation", func(t *testing.T) {
		recs := Fallback(
			taxengine.CompanyProfile{LegalForm: taxengine.LegalFormGmbH, Revenue: 200000, Profit: 30000, VATRegistered: true},
			taxengine.SavingsAnalysis{Savings: 800, BestCanton: "ZG"},
		)
		for _, r := range recs {
			assert.NotContains(t, r, "Canton Relocation")
		}
	})

	t.Run("profitable sole proprietorship", func(t *testing.T) {
		recs := Fallback(
			taxengine.CompanyProfile{LegalForm: taxengine.LegalFormEinzelfirma, Revenue: 600000, Profit: 150000, VATRegistered: true},
			taxengine.SavingsAnalysis{},
		)
		found := false
		for _, r := range recs {
			if containsPrefix(r, "Legal Structure:") {
				found = true
			}
		}
		assert.True(t, found, "expected incorporation recommendation")
	})

	t.Run("unregistered VAT", func(t *testing.T) {
		recs := Fallback(
			taxengine.CompanyProfile{LegalForm: taxengine.LegalFormGmbH, Revenue: 150000, Profit: 20000},
			taxengine.SavingsAnalysis{},
		)
		found := false
		for _, r := range recs {
			if containsPrefix(r, "VAT Registration:") {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("quarterly planning always present or capped", func(t *testing.T) {
		recs := Fallback(taxengine.CompanyProfile{}, taxengine.SavingsAnalysis{})
		require.NotEmpty(t, recs)
		assert.Contains(t, recs[len(recs)-1], "Tax Planning")
	})

	t.Run("never more than four", func(t *testing.T) {
		recs := Fallback(
			taxengine.CompanyProfile{LegalForm: taxengine.LegalFormGmbH, Revenue: 2000000, Profit: 400000},
			taxengine.SavingsAnalysis{Savings: 50000, BestCanton: "ZG"},
		)
		assert.LessOrEqual(t, len(recs), maxRecommendations)
	})
}

func containsPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func TestParseNumbered(t *testing.T) {
	content := `Here are my recommendations:

1. Relocate your headquarters to canton Zug for lower rates.
2. Short.
3.   Register for VAT to recover input taxes on purchases.
Some prose that is not numbered.
4. Convert the sole proprietorship into a GmbH structure.
5. Review depreciation schedules before the fiscal year closes.
6. This one is past the cap and must be dropped entirely.`

	recs := parseNumbered(content)
	require.Len(t, recs, maxRecommendations)
	assert.Equal(t, "Relocate your headquarters to canton Zug for lower rates.", recs[0])
	assert.Equal(t, "Register for VAT to recover input taxes on purchases.", recs[1])
	assert.Equal(t, "Convert the sole proprietorship into a GmbH structure.", recs[2])
	assert.Equal(t, "Review depreciation schedules before the fiscal year closes.", recs[3])
}

func TestParseNumbered_Empty(t *testing.T) {
	assert.Empty(t, parseNumbered(""))
	assert.Empty(t, parseNumbered("no numbered lines at all"))
}

func TestGenerate_WithoutAPIKeyUsesFallback(t *testing.T) {
	svc := NewService(Config{})

	recs := svc.Generate(context.Background(),
		taxengine.CompanyProfile{LegalForm: taxengine.LegalFormGmbH, Revenue: 500000, Profit: 100000, VATRegistered: true},
		taxengine.HealthScore{Score: 70, Grade: taxengine.GradeC},
		taxengine.SavingsAnalysis{Savings: 15000, BestCanton: "ZG", CurrentTax: 40000, BestTax: 25000},
	)

	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "Canton Relocation")
}
