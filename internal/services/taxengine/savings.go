package taxengine

// AnalyzeSavings compares the current canton's burden against the cheapest
// canton in the table. The best canton is the one with the minimal total
// burden; exact ties resolve to the lowest canton code, which makes the
// result deterministic when several cantons share identical rates.
//
// Savings is never negative: when the current canton is already (one of)
// the cheapest, best == current and the delta is 0.
func (e *Engine) AnalyzeSavings(profile CompanyProfile, currentCanton string) (SavingsAnalysis, error) {
	breakdowns := e.ComputeAll(profile)

	var current *TaxBreakdown
	for i := range breakdowns {
		if breakdowns[i].Canton == currentCanton {
			current = &breakdowns[i]
			break
		}
	}
	if current == nil {
		return SavingsAnalysis{}, ErrCantonNotFound
	}

	best := breakdowns[0]
	for _, b := range breakdowns[1:] {
		if b.TotalTaxBurden < best.TotalTaxBurden ||
			(b.TotalTaxBurden == best.TotalTaxBurden && b.Canton < best.Canton) {
			best = b
		}
	}

	return SavingsAnalysis{
		Savings:    current.TotalTaxBurden - best.TotalTaxBurden,
		BestCanton: best.Canton,
		CurrentTax: current.TotalTaxBurden,
		BestTax:    best.TotalTaxBurden,
	}, nil
}
