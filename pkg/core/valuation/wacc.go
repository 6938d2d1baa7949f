// Package valuation implements closed-form corporate-finance formulas:
// WACC, CAPM cost of equity, terminal growth and terminal value, the
// reinvestment rate, and a statistical summary of historical growth.
// Every function is pure; results depend only on the explicit inputs.
package valuation

import "fmt"

// WACCInput parameters for calculating Cost of Capital
type WACCInput struct {
	EquityValue  float64 // Market value of equity
	DebtValue    float64 // Market value of debt
	CostOfEquity float64
	CostOfDebt   float64 // Pre-tax
	TaxRate      float64
}

// WACCResult holds the calculated rates
type WACCResult struct {
	WACC               float64
	WeightEquity       float64
	WeightDebt         float64
	AfterTaxCostOfDebt float64
}

// CalculateWACC computes the Weighted Average Cost of Capital from the
// market values of equity and debt.
func CalculateWACC(input WACCInput) (WACCResult, error) {
	// 1. Capital weights
	// We = E / (E + D), Wd = 1 - We
	total := input.EquityValue + input.DebtValue
	if total == 0 {
		return WACCResult{}, fmt.Errorf("%w: equity + debt = 0", ErrDegenerateDenominator)
	}
	we := input.EquityValue / total
	wd := 1 - we

	// 2. Cost of Debt (After-tax)
	// Kd = PreTaxKd * (1 - t)
	kd := input.CostOfDebt * (1 - input.TaxRate)

	// 3. WACC
	wacc := (input.CostOfEquity * we) + (kd * wd)

	return WACCResult{
		WACC:               wacc,
		WeightEquity:       we,
		WeightDebt:         wd,
		AfterTaxCostOfDebt: kd,
	}, nil
}

// CostOfEquity computes the expected return on equity using CAPM.
// Ke = Rf + Beta * ERP
func CostOfEquity(riskFreeRate, beta, marketRiskPremium float64) float64 {
	return riskFreeRate + beta*marketRiskPremium
}
