package valuation

import (
	"errors"
	"math"
	"testing"
)

func TestTerminalValue(t *testing.T) {
	// TV = 100 * 1.03 / (0.08 - 0.03) = 103 / 0.05 = 2060
	tv, err := TerminalValue(100, 0.03, 0.08)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(tv-2060) > 0.0001 {
		t.Errorf("Expected 2060, got %f", tv)
	}
}

func TestTerminalValueZeroSpread(t *testing.T) {
	_, err := TerminalValue(100, 0.05, 0.05)
	if !errors.Is(err, ErrDegenerateDenominator) {
		t.Errorf("Expected ErrDegenerateDenominator, got %v", err)
	}
}

func TestTerminalValueNegativeSpread(t *testing.T) {
	// r < g is economically nonsensical but computes: 100*1.08/-0.03 = -3600.
	// The library returns it; the caller owns the sanity check.
	tv, err := TerminalValue(100, 0.08, 0.05)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(tv-(-3600)) > 0.0001 {
		t.Errorf("Expected -3600, got %f", tv)
	}
}
