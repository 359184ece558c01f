package recommend

import (
	"fmt"

	"taxpilot/internal/services/taxengine"
)

// Savings below this amount are not worth a relocation recommendation.
const relocationSavingsFloor = 10_000

// Fallback derives recommendations from the profile and savings analysis
// alone. Used when no AI backend is configured or the upstream call fails.
func Fallback(profile taxengine.CompanyProfile, analysis taxengine.SavingsAnalysis) []string {
	var recommendations []string

	if analysis.Savings > relocationSavingsFloor {
		recommendations = append(recommendations, fmt.Sprintf(
			"Canton Relocation: Consider relocating to %s to save CHF %s annually while maintaining business operations.",
			analysis.BestCanton, taxengine.FormatCHF(analysis.Savings)))
	}

	if profile.LegalForm == taxengine.LegalFormEinzelfirma && profile.Profit > 100_000 {
		recommendations = append(recommendations,
			"Legal Structure: Convert to GmbH or AG to benefit from lower corporate tax rates and improved tax planning flexibility.")
	}

	if profile.LegalForm == taxengine.LegalFormAG || profile.LegalForm == taxengine.LegalFormGmbH {
		recommendations = append(recommendations,
			"Dividend Timing: Optimize dividend distributions across tax years to minimize personal income tax impact and leverage qualified participation exemptions.")
	}

	if profile.Revenue > 100_000 && !profile.VATRegistered {
		recommendations = append(recommendations,
			"VAT Registration: Consider voluntary VAT registration to recover input VAT and improve cash flow, especially for B2B operations.")
	}

	recommendations = append(recommendations,
		"Tax Planning: Implement quarterly tax reviews to ensure optimal timing of expenses, depreciation strategies, and provision management.")

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
