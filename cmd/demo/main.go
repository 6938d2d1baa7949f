package main

import (
	"fmt"

	"valuation_metrics/pkg/core/valuation"
)

// Logger helper
func logStep(step string, details string) {
	fmt.Printf("\n[STEP] %s\n", step)
	fmt.Println("---------------------------------------------------------")
	fmt.Println(details)
	fmt.Println("---------------------------------------------------------")
}

func main() {
	logStep("0. Initialization", "Running cost-of-capital and terminal-growth examples...")

	// =========================================================================
	// STEP 1: WACC
	// =========================================================================
	waccRes, err := valuation.CalculateWACC(valuation.WACCInput{
		EquityValue:  1000000,
		DebtValue:    500000,
		CostOfEquity: 0.10,
		CostOfDebt:   0.05,
		TaxRate:      0.25,
	})
	if err != nil {
		fmt.Printf("[FATAL] WACC failed: %v\n", err)
		return
	}
	logStep("1. Weighted Average Cost of Capital", fmt.Sprintf(
		"Weights: E %.1f%% / D %.1f%%\nAfter-tax Kd: %.2f%%\nWACC: %.2f%%",
		waccRes.WeightEquity*100, waccRes.WeightDebt*100,
		waccRes.AfterTaxCostOfDebt*100, waccRes.WACC*100))

	// =========================================================================
	// STEP 2: TERMINAL GROWTH (TWO METHODS)
	// =========================================================================
	gdpGrowth := valuation.TerminalGrowthGDP(0.02, 0.015)
	reinvGrowth := valuation.TerminalGrowthReinvestment(0.15, 0.20)
	logStep("2. Terminal Growth Rate", fmt.Sprintf(
		"GDP method:          %.2f%%\nReinvestment method: %.2f%%",
		gdpGrowth*100, reinvGrowth*100))

	// =========================================================================
	// STEP 3: TERMINAL VALUE (GORDON GROWTH)
	// =========================================================================
	tv, err := valuation.TerminalValue(100, gdpGrowth, waccRes.WACC)
	if err != nil {
		fmt.Printf("[FATAL] Terminal value failed: %v\n", err)
		return
	}
	logStep("3. Terminal Value", fmt.Sprintf(
		"Formula: [Final FCF * (1 + g)] / (WACC - g)\nInputs:  FCF=$100.00M, g=%.2f%%, WACC=%.2f%%\nTV:      $%.2fM",
		gdpGrowth*100, waccRes.WACC*100, tv))

	// =========================================================================
	// STEP 4: HISTORICAL GROWTH ANALYSIS
	// =========================================================================
	historicalData := []float64{100, 110, 125, 135, 150, 172}
	growthStats, err := valuation.HistoricalGrowthAnalysis(historicalData)
	if err != nil {
		fmt.Printf("[FATAL] Growth analysis failed: %v\n", err)
		return
	}
	logStep("4. Historical Growth Analysis", fmt.Sprintf(
		"Series: %v\nMean:   %.2f%%\nMedian: %.2f%%\nStdDev: %.2f%%\nMin:    %.2f%%\nMax:    %.2f%%",
		historicalData,
		growthStats.MeanGrowth*100, growthStats.MedianGrowth*100,
		growthStats.StdDev*100, growthStats.MinGrowth*100, growthStats.MaxGrowth*100))
}
