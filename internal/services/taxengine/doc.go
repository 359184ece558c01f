/*
Package taxengine implements the Swiss corporate tax estimation engine.

The engine covers:
- Per-canton tax breakdowns (federal, cantonal, municipal, capital tax)
- Relocation savings analysis against the cheapest canton
- A 0-100 tax health score with grade, issues and recommendations

Usage:

	// Create an engine backed by the bundled 2025 rate table
	engine := taxengine.New(taxengine.DefaultRateTable())

	// Breakdown for every canton
	breakdowns := engine.ComputeAll(profile)

	// Savings against the current canton
	analysis, err := engine.AnalyzeSavings(profile, profile.Canton)

	// Health score
	score, err := engine.ScoreHealth(profile)

All computations are pure functions over the injected rate table; the engine
holds no mutable state and is safe for concurrent use.

Error Handling:

The engine returns specific errors for different scenarios:
- ErrCantonNotFound: when a canton code is not in the rate table
- ErrInvalidProfile: when a company profile fails validation
*/
package taxengine
