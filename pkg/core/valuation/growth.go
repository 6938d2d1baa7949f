package valuation

import "fmt"

// TerminalGrowthGDP estimates the perpetual growth rate from nominal GDP
// growth (real growth plus inflation) with no company-specific adjustment.
func TerminalGrowthGDP(realGDPGrowth, inflationRate float64) float64 {
	return TerminalGrowthGDPAdjusted(realGDPGrowth, inflationRate, 1.0)
}

// TerminalGrowthGDPAdjusted scales the nominal GDP anchor by a
// company-specific adjustment factor. A factor below 1 models a firm
// expected to grow slower than the economy in perpetuity.
func TerminalGrowthGDPAdjusted(realGDPGrowth, inflationRate, adjustmentFactor float64) float64 {
	return (realGDPGrowth + inflationRate) * adjustmentFactor
}

// TerminalGrowthReinvestment estimates the perpetual growth rate from
// fundamentals: g = ROC * Reinvestment Rate.
func TerminalGrowthReinvestment(returnOnCapital, reinvestmentRate float64) float64 {
	return returnOnCapital * reinvestmentRate
}

// ReinvestmentRate computes the fraction of after-tax operating profit
// reinvested into the business:
// RR = (CapEx - Depreciation + ChangeWC) / (EBIT * (1 - t))
func ReinvestmentRate(capex, depreciation, workingCapitalChange, ebit, taxRate float64) (float64, error) {
	nopat := ebit * (1 - taxRate)
	if nopat == 0 {
		return 0, fmt.Errorf("%w: EBIT*(1-t) = 0", ErrDegenerateDenominator)
	}
	return (capex - depreciation + workingCapitalChange) / nopat, nil
}
