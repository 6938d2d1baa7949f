package valuation

import (
	"errors"
	"math"
	"testing"
)

func TestTerminalGrowthGDP(t *testing.T) {
	// (0.02 + 0.015) * 1.0 = 0.035
	g := TerminalGrowthGDP(0.02, 0.015)
	if math.Abs(g-0.035) > 0.0001 {
		t.Errorf("Expected 0.035, got %f", g)
	}

	// Linear in the adjustment factor: factor 2.0 doubles the anchor
	g2 := TerminalGrowthGDPAdjusted(0.02, 0.015, 2.0)
	if math.Abs(g2-0.07) > 0.0001 {
		t.Errorf("Expected 0.07, got %f", g2)
	}
	if math.Abs(g2-2*g) > 1e-12 {
		t.Errorf("Adjustment factor not linear: %f vs 2*%f", g2, g)
	}
}

func TestTerminalGrowthReinvestment(t *testing.T) {
	// 0.15 * 0.20 = 0.03
	g := TerminalGrowthReinvestment(0.15, 0.20)
	if math.Abs(g-0.03) > 0.0001 {
		t.Errorf("Expected 0.03, got %f", g)
	}
}

func TestReinvestmentRate(t *testing.T) {
	// (100 - 40 + 10) / (200 * 0.75) = 70 / 150 = 0.4667
	rate, err := ReinvestmentRate(100, 40, 10, 200, 0.25)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := 70.0 / 150.0
	if math.Abs(rate-expected) > 0.0001 {
		t.Errorf("Expected %f, got %f", expected, rate)
	}
}

func TestReinvestmentRateDegenerate(t *testing.T) {
	// EBIT = 0 and tax rate = 1 both zero the denominator
	if _, err := ReinvestmentRate(100, 40, 10, 0, 0.25); !errors.Is(err, ErrDegenerateDenominator) {
		t.Errorf("Expected ErrDegenerateDenominator for EBIT=0, got %v", err)
	}
	if _, err := ReinvestmentRate(100, 40, 10, 200, 1.0); !errors.Is(err, ErrDegenerateDenominator) {
		t.Errorf("Expected ErrDegenerateDenominator for tax=1, got %v", err)
	}
}
