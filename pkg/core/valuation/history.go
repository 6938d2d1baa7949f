package valuation

import (
	"fmt"

	"valuation_metrics/pkg/core/stats"
)

// GrowthStats summarizes the period-over-period growth rates of a
// historical series.
type GrowthStats struct {
	MeanGrowth   float64 `json:"mean_growth"`
	MedianGrowth float64 `json:"median_growth"`
	StdDev       float64 `json:"std_dev"` // Population std dev
	MinGrowth    float64 `json:"min_growth"`
	MaxGrowth    float64 `json:"max_growth"`
}

// GrowthRates computes growth[i] = (data[i+1] - data[i]) / data[i] over a
// chronologically ordered series (oldest first). The result has length
// len(data)-1.
func GrowthRates(historicalData []float64) ([]float64, error) {
	if len(historicalData) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 data points, got %d", ErrInsufficientData, len(historicalData))
	}

	rates := make([]float64, 0, len(historicalData)-1)
	for i := 0; i < len(historicalData)-1; i++ {
		base := historicalData[i]
		if base == 0 {
			return nil, fmt.Errorf("%w: zero base value at index %d", ErrDegenerateDenominator, i)
		}
		rates = append(rates, (historicalData[i+1]-base)/base)
	}
	return rates, nil
}

// HistoricalGrowthAnalysis summarizes growth over the full series.
func HistoricalGrowthAnalysis(historicalData []float64) (GrowthStats, error) {
	return HistoricalGrowthAnalysisWindow(historicalData, 0)
}

// HistoricalGrowthAnalysisWindow summarizes growth over the most recent
// `periods` period-over-period deltas. periods <= 0 analyzes the whole
// series; a window wider than the series is clamped to it.
func HistoricalGrowthAnalysisWindow(historicalData []float64, periods int) (GrowthStats, error) {
	rates, err := GrowthRates(historicalData)
	if err != nil {
		return GrowthStats{}, err
	}
	if periods > 0 && periods < len(rates) {
		rates = rates[len(rates)-periods:]
	}

	mean, stddev := stats.MeanStdDev(rates)
	return GrowthStats{
		MeanGrowth:   mean,
		MedianGrowth: stats.Median(rates),
		StdDev:       stddev,
		MinGrowth:    stats.Min(rates),
		MaxGrowth:    stats.Max(rates),
	}, nil
}
