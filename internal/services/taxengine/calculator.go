package taxengine

import (
	"fmt"
	"sort"
)

// Engine computes tax breakdowns, savings and health scores over an
// injected rate table. It holds no mutable state.
type Engine struct {
	table *RateTable
}

// New creates a tax engine backed by the given rate table.
func New(table *RateTable) *Engine {
	if table == nil {
		panic("rate table is required")
	}
	return &Engine{table: table}
}

// RateTable returns the engine's rate table.
func (e *Engine) RateTable() *RateTable {
	return e.table
}

// ComputeAll returns one breakdown per canton in the table's canonical
// order. Zero or negative profit still produces breakdowns; the effective
// rate is 0 in that case.
func (e *Engine) ComputeAll(profile CompanyProfile) []TaxBreakdown {
	cantons := e.table.Cantons()
	breakdowns := make([]TaxBreakdown, 0, len(cantons))
	for _, c := range cantons {
		breakdowns = append(breakdowns, compute(profile, c))
	}
	return breakdowns
}

// ComputeFor returns the breakdown for a single canton, or
// ErrCantonNotFound when the code is absent from the table.
func (e *Engine) ComputeFor(profile CompanyProfile, canton string) (TaxBreakdown, error) {
	c, err := e.table.Canton(canton)
	if err != nil {
		return TaxBreakdown{}, err
	}
	return compute(profile, c), nil
}

// RankByBurden returns a copy of breakdowns sorted ascending by total tax
// burden. Exact ties are broken by canton code so the ordering is
// deterministic.
func RankByBurden(breakdowns []TaxBreakdown) []TaxBreakdown {
	ranked := make([]TaxBreakdown, len(breakdowns))
	copy(ranked, breakdowns)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalTaxBurden != ranked[j].TotalTaxBurden {
			return ranked[i].TotalTaxBurden < ranked[j].TotalTaxBurden
		}
		return ranked[i].Canton < ranked[j].Canton
	})
	return ranked
}

// TopCantons returns the n cheapest cantons for the profile.
func (e *Engine) TopCantons(profile CompanyProfile, n int) []TaxBreakdown {
	ranked := RankByBurden(e.ComputeAll(profile))
	if n < 0 || n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func compute(profile CompanyProfile, canton CantonRates) TaxBreakdown {
	federalTax := profile.Profit * (canton.FederalTaxRate / 100)
	cantonalTax := profile.Profit * (canton.CorporateIncomeTaxRate / 100)
	municipalTax := cantonalTax * canton.MunicipalMultiplier

	estimatedCapital := profile.Revenue * CapitalEstimateFactor
	capitalTax := estimatedCapital * canton.CapitalTaxRate

	totalTaxBurden := federalTax + cantonalTax + municipalTax + capitalTax

	effectiveRate := 0.0
	if profile.Profit > 0 {
		effectiveRate = totalTaxBurden / profile.Profit * 100
	}

	return TaxBreakdown{
		Canton:         canton.Code,
		FederalTax:     federalTax,
		CantonalTax:    cantonalTax,
		MunicipalTax:   municipalTax,
		CapitalTax:     capitalTax,
		TotalTaxBurden: totalTaxBurden,
		EffectiveRate:  effectiveRate,
	}
}

// ValidateProfile checks a company profile against the engine's invariants.
// Profit above revenue is rejected here rather than absorbed downstream,
// since the health scorer's margin factor assumes profit <= revenue.
func (e *Engine) ValidateProfile(profile CompanyProfile) error {
	if profile.Revenue < 0 {
		return fmt.Errorf("%w: revenue must not be negative", ErrInvalidProfile)
	}
	if profile.Profit < 0 {
		return fmt.Errorf("%w: profit must not be negative", ErrInvalidProfile)
	}
	if profile.Profit > profile.Revenue {
		return fmt.Errorf("%w: profit cannot exceed revenue", ErrInvalidProfile)
	}
	if profile.LegalForm != "" && !ValidLegalForm(profile.LegalForm) {
		return fmt.Errorf("%w: unknown legal form %q", ErrInvalidProfile, profile.LegalForm)
	}
	if profile.Canton != "" && !e.table.Has(profile.Canton) {
		return fmt.Errorf("%w: %s", ErrCantonNotFound, profile.Canton)
	}
	return nil
}
