package taxengine

// CapitalEstimateFactor approximates a company's taxable capital as a share
// of its annual revenue. SMEs rarely report audited equity figures, so the
// capital tax base is estimated as revenue * 0.20.
const CapitalEstimateFactor = 0.20

// Scoring weights and thresholds
const (
	// Tax-efficiency percentile contributes up to 70 of the 100 points.
	percentileWeight = 0.7

	// Revenue above this amount makes VAT registration relevant.
	vatRevenueThreshold = 100_000

	// Revenue above this amount favors an AG structure and flags
	// sole proprietorships.
	incorporationRevenueThreshold = 500_000

	// Headcount above this earns the employee-count bonus.
	employeeCountThreshold = 10

	// Profit margins above this earn the full margin bonus.
	strongProfitMargin = 0.15

	// Effective rates above this percentage are flagged as high.
	highEffectiveRate = 20

	// Savings above this share of profit trigger a relocation
	// recommendation.
	materialSavingsShare = 0.05
)

// Grade boundaries, exact: 90 => A, 89 => B, 70 => C, 69 => D, 59 => F.
const (
	gradeAMin = 90
	gradeBMin = 80
	gradeCMin = 70
	gradeDMin = 60
)
