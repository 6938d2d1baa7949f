package valuation

import "errors"

// Sentinel errors returned by the formula functions. Callers match them
// with errors.Is; the wrapped message carries the offending input.
var (
	// ErrDegenerateDenominator signals a denominator that is exactly zero
	// (zero total capital, zero after-tax EBIT, zero Gordon-growth spread,
	// or a zero element in a historical series).
	ErrDegenerateDenominator = errors.New("invalid input: degenerate denominator")

	// ErrInsufficientData signals a historical series too short to produce
	// any growth rate.
	ErrInsufficientData = errors.New("insufficient data")
)
