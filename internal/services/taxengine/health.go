package taxengine

import (
	"fmt"
	"math"
	"strconv"
)

// scoreFactor is one named, independently evaluated scoring rule.
// Factors are combined by simple addition so the scoring policy stays
// auditable and replaceable.
type scoreFactor func(CompanyProfile) int

var scoreFactors = []scoreFactor{
	vatOptimizationFactor,
	legalStructureFactor,
	employeeCountFactor,
	profitMarginFactor,
}

func vatOptimizationFactor(p CompanyProfile) int {
	if p.Revenue > vatRevenueThreshold && !p.VATRegistered {
		return -10
	}
	return 5
}

func legalStructureFactor(p CompanyProfile) int {
	if p.LegalForm == LegalFormAG && p.Revenue > incorporationRevenueThreshold {
		return 5
	}
	return 0
}

func employeeCountFactor(p CompanyProfile) int {
	if p.Employees > employeeCountThreshold {
		return 5
	}
	return 0
}

func profitMarginFactor(p CompanyProfile) int {
	if p.Revenue > 0 && p.Profit/p.Revenue > strongProfitMargin {
		return 10
	}
	return 5
}

// ScoreHealth derives the tax health score for a company. The canton's rank
// among all cantons (cheapest first) contributes up to 70 points; the
// remaining points come from the business-factor rules. All applicable
// issue and recommendation rules fire independently.
func (e *Engine) ScoreHealth(profile CompanyProfile) (HealthScore, error) {
	if !e.table.Has(profile.Canton) {
		return HealthScore{}, fmt.Errorf("%w: %s", ErrCantonNotFound, profile.Canton)
	}

	ranked := RankByBurden(e.ComputeAll(profile))

	rank := 0
	var current TaxBreakdown
	for i, b := range ranked {
		if b.Canton == profile.Canton {
			rank = i
			current = b
			break
		}
	}

	n := float64(len(ranked))
	percentile := (n - float64(rank)) / n * 100

	score := int(math.Round(percentile * percentileWeight))
	for _, factor := range scoreFactors {
		score += factor(profile)
	}
	score = clampScore(score)

	issues, recommendations := []string{}, []string{}

	if current.EffectiveRate > highEffectiveRate {
		issues = append(issues, "High effective tax rate compared to Swiss average")
		recommendations = append(recommendations, "Consider relocating to a lower-tax canton")
	}
	if profile.Revenue > vatRevenueThreshold && !profile.VATRegistered {
		issues = append(issues, "Not VAT registered despite high revenue")
		recommendations = append(recommendations, "Register for VAT to optimize input tax deductions")
	}
	if profile.LegalForm == LegalFormEinzelfirma && profile.Revenue > incorporationRevenueThreshold {
		issues = append(issues, "Sole proprietorship may not be optimal for high revenue")
		recommendations = append(recommendations, "Consider incorporating as GmbH or AG for tax efficiency")
	}

	analysis, err := e.AnalyzeSavings(profile, profile.Canton)
	if err != nil {
		return HealthScore{}, err
	}
	if analysis.Savings > profile.Profit*materialSavingsShare {
		recommendations = append(recommendations,
			fmt.Sprintf("Potential annual savings of %s CHF by relocating", FormatCHF(analysis.Savings)))
	}

	return HealthScore{
		Score:            score,
		Grade:            gradeFor(score),
		Issues:           issues,
		Recommendations:  recommendations,
		PotentialSavings: math.Max(0, analysis.Savings),
	}, nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func gradeFor(score int) Grade {
	switch {
	case score >= gradeAMin:
		return GradeA
	case score >= gradeBMin:
		return GradeB
	case score >= gradeCMin:
		return GradeC
	case score >= gradeDMin:
		return GradeD
	default:
		return GradeF
	}
}

// FormatCHF renders a rounded amount with the Swiss apostrophe thousands
// separator, e.g. 54804 -> "54'804".
func FormatCHF(amount float64) string {
	s := strconv.FormatInt(int64(math.Round(amount)), 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "'" + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
