package taxengine

// LegalForm is a Swiss company legal form.
type LegalForm string

// Supported legal forms
const (
	LegalFormGmbH                  LegalForm = "GmbH"
	LegalFormAG                    LegalForm = "AG"
	LegalFormEinzelfirma           LegalForm = "Einzelfirma"
	LegalFormKollektivgesellschaft LegalForm = "Kollektivgesellschaft"
)

// ValidLegalForm reports whether f is one of the supported legal forms.
func ValidLegalForm(f LegalForm) bool {
	switch f {
	case LegalFormGmbH, LegalFormAG, LegalFormEinzelfirma, LegalFormKollektivgesellschaft:
		return true
	}
	return false
}

// CompanyProfile is the caller-supplied input to every engine operation.
// It is consumed per request and never mutated or retained.
type CompanyProfile struct {
	Name          string    `json:"name"`
	LegalForm     LegalForm `json:"legalForm"`
	Canton        string    `json:"canton"`
	Revenue       float64   `json:"revenue"`
	Profit        float64   `json:"profit"`
	Employees     int       `json:"employees"`
	Industry      string    `json:"industry"`
	VATRegistered bool      `json:"vatRegistered"`
}

// TaxBreakdown is the estimated tax burden of a company in one canton.
// TotalTaxBurden is always the exact sum of the four tax components.
type TaxBreakdown struct {
	Canton         string  `json:"canton"`
	FederalTax     float64 `json:"federalTax"`
	CantonalTax    float64 `json:"cantonalTax"`
	MunicipalTax   float64 `json:"municipalTax"`
	CapitalTax     float64 `json:"capitalTax"`
	TotalTaxBurden float64 `json:"totalTaxBurden"`
	EffectiveRate  float64 `json:"effectiveRate"`
}

// SavingsAnalysis compares the current canton against the cheapest one.
type SavingsAnalysis struct {
	Savings    float64 `json:"savings"`
	BestCanton string  `json:"bestCanton"`
	CurrentTax float64 `json:"currentTax"`
	BestTax    float64 `json:"bestTax"`
}

// Grade is a letter grade derived from the health score.
type Grade string

// Health score grades
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// HealthScore summarizes how tax-efficient a company's canton choice
// and structure are.
type HealthScore struct {
	Score            int      `json:"score"`
	Grade            Grade    `json:"grade"`
	Issues           []string `json:"issues"`
	Recommendations  []string `json:"recommendations"`
	PotentialSavings float64  `json:"potentialSavings"`
}
