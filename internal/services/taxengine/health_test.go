package taxengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreHealth_ZurichAG(t *testing.T) {
	engine := testEngine(t)

	profile := CompanyProfile{
		Name:          "Muster Treuhand AG",
		LegalForm:     LegalFormAG,
		Canton:        "ZH",
		Revenue:       1200000,
		Profit:        240000,
		Employees:     6,
		VATRegistered: true,
	}

	score, err := engine.ScoreHealth(profile)
	require.NoError(t, err)

	// ZH ranks 13th of 26 for this profile: percentile 53.85, base 38.
	// Factors: VAT +5, AG structure +5, employees 0, margin 0.20 +10.
	assert.Equal(t, 58, score.Score)
	assert.Equal(t, GradeF, score.Grade)

	assert.Contains(t, score.Issues, "High effective tax rate compared to Swiss average")
	assert.Contains(t, score.Recommendations, "Consider relocating to a lower-tax canton")
	assert.Contains(t, score.Recommendations, "Potential annual savings of 12'583 CHF by relocating")
	assert.InDelta(t, 12583.44, score.PotentialSavings, 0.01)
}

func TestScoreHealth_ZugGmbH(t *testing.T) {
	engine := testEngine(t)

	profile := CompanyProfile{
		Name:          "Alpine Consulting GmbH",
		LegalForm:     LegalFormGmbH,
		Canton:        "ZG",
		Revenue:       300000,
		Profit:        30000,
		Employees:     2,
		VATRegistered: true,
	}

	score, err := engine.ScoreHealth(profile)
	require.NoError(t, err)

	// ZG ranks 4th of 26: percentile 88.46, base 62.
	// Factors: VAT +5, structure 0, employees 0, margin 0.10 +5.
	assert.Equal(t, 72, score.Score)
	assert.Equal(t, GradeC, score.Grade)

	// Savings below the 5% of profit threshold, no relocation savings line.
	for _, r := range score.Recommendations {
		assert.NotContains(t, r, "Potential annual savings")
	}
}

func TestScoreHealth_IssueRules(t *testing.T) {
	engine := testEngine(t)

	t.Run("unregistered VAT above threshold", func(t *testing.T) {
		score, err := engine.ScoreHealth(CompanyProfile{
			LegalForm: LegalFormGmbH,
			Canton:    "ZG",
			Revenue:   250000,
			Profit:    20000,
		})
		require.NoError(t, err)
		assert.Contains(t, score.Issues, "Not VAT registered despite high revenue")
		assert.Contains(t, score.Recommendations, "Register for VAT to optimize input tax deductions")
	})

	t.Run("sole proprietorship above incorporation threshold", func(t *testing.T) {
		score, err := engine.ScoreHealth(CompanyProfile{
			LegalForm:     LegalFormEinzelfirma,
			Canton:        "ZG",
			Revenue:       800000,
			Profit:        90000,
			VATRegistered: true,
		})
		require.NoError(t, err)
		assert.Contains(t, score.Issues, "Sole proprietorship may not be optimal for high revenue")
		assert.Contains(t, score.Recommendations, "Consider incorporating as GmbH or AG for tax efficiency")
	})

	t.Run("unknown canton", func(t *testing.T) {
		_, err := engine.ScoreHealth(CompanyProfile{Canton: "XX", Revenue: 100000, Profit: 10000})
		assert.ErrorIs(t, err, ErrCantonNotFound)
	})
}

func TestScoreHealth_ScoreInRange(t *testing.T) {
	engine := testEngine(t)

	profiles := []CompanyProfile{
		{Canton: "BE", Revenue: 5000000, Profit: 50000},
		{Canton: "GE", Revenue: 100, Profit: 50, VATRegistered: true},
		{Canton: "TI", Revenue: 2000000, Profit: 0},
		{Canton: "ZH", LegalForm: LegalFormAG, Revenue: 10000000, Profit: 3000000, Employees: 50, VATRegistered: true},
	}
	for _, p := range profiles {
		score, err := engine.ScoreHealth(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score.Score, 0)
		assert.LessOrEqual(t, score.Score, 100)
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score int
		want  Grade
	}{
		{100, GradeA},
		{90, GradeA},
		{89, GradeB},
		{80, GradeB},
		{79, GradeC},
		{70, GradeC},
		{69, GradeD},
		{60, GradeD},
		{59, GradeF},
		{0, GradeF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gradeFor(tt.score), "score %d", tt.score)
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 0, clampScore(0))
	assert.Equal(t, 58, clampScore(58))
	assert.Equal(t, 100, clampScore(100))
	assert.Equal(t, 100, clampScore(140))
}

func TestFormatCHF(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1'000"},
		{54804, "54'804"},
		{12583.44, "12'583"},
		{1234567, "1'234'567"},
		{-54804, "-54'804"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCHF(tt.amount), "amount %v", tt.amount)
	}
}
