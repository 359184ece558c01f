package taxengine

import "fmt"

// CantonNames holds the localized names of a canton in the four Swiss
// business languages.
type CantonNames struct {
	DE string `json:"de"`
	FR string `json:"fr"`
	IT string `json:"it"`
	EN string `json:"en"`
}

// CantonRates is the immutable per-canton tax parameter record.
// FederalTaxRate is currently 8.5% for every canton but is kept as data so a
// future divergence is a data change only.
type CantonRates struct {
	Code                   string      `json:"code"`
	Name                   string      `json:"name"`
	Names                  CantonNames `json:"names"`
	CorporateIncomeTaxRate float64     `json:"corporateIncomeTaxRate"`
	CapitalTaxRate         float64     `json:"capitalTaxRate"`
	MunicipalMultiplier    float64     `json:"municipalMultiplier"`
	VATThreshold           float64     `json:"vatThreshold"`
	FederalTaxRate         float64     `json:"federalTaxRate"`
}

// RateTable is an immutable set of canton rate records, e.g. one tax year.
// The canonical canton order is the order the records were supplied in.
type RateTable struct {
	cantons []CantonRates
	byCode  map[string]CantonRates
}

// NewRateTable builds a rate table from per-canton records.
// Codes must be unique; the input slice is copied and never retained.
func NewRateTable(cantons []CantonRates) (*RateTable, error) {
	if len(cantons) == 0 {
		return nil, ErrEmptyRateTable
	}

	t := &RateTable{
		cantons: make([]CantonRates, len(cantons)),
		byCode:  make(map[string]CantonRates, len(cantons)),
	}
	copy(t.cantons, cantons)

	for _, c := range t.cantons {
		if _, exists := t.byCode[c.Code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCanton, c.Code)
		}
		t.byCode[c.Code] = c
	}
	return t, nil
}

// Canton returns the rate record for a canton code.
func (t *RateTable) Canton(code string) (CantonRates, error) {
	c, ok := t.byCode[code]
	if !ok {
		return CantonRates{}, fmt.Errorf("%w: %s", ErrCantonNotFound, code)
	}
	return c, nil
}

// Has reports whether the table contains a canton code.
func (t *RateTable) Has(code string) bool {
	_, ok := t.byCode[code]
	return ok
}

// Cantons returns all rate records in canonical order.
// The returned slice is a copy; mutating it does not affect the table.
func (t *RateTable) Cantons() []CantonRates {
	out := make([]CantonRates, len(t.cantons))
	copy(out, t.cantons)
	return out
}

// Len returns the number of cantons in the table.
func (t *RateTable) Len() int {
	return len(t.cantons)
}
