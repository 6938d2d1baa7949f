package valuation

import "fmt"

// TerminalValue computes the Gordon Growth perpetuity value:
// TV = FCF * (1 + g) / (r - g)
// Only exact equality of discount and growth rates is rejected. A negative
// spread (r < g) is mathematically well-defined and returns a negative
// value; callers are responsible for sanity-checking spread positivity.
func TerminalValue(finalCashFlow, terminalGrowthRate, discountRate float64) (float64, error) {
	spread := discountRate - terminalGrowthRate
	if spread == 0 {
		return 0, fmt.Errorf("%w: discount rate equals terminal growth rate (%.4f)", ErrDegenerateDenominator, discountRate)
	}
	return finalCashFlow * (1 + terminalGrowthRate) / spread, nil
}
