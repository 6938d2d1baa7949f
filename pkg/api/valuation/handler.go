// Package valuation exposes the formula library over HTTP JSON endpoints.
// The handlers are presentation only: every number comes straight from
// pkg/core/valuation.
package valuation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"valuation_metrics/pkg/core/store"
	core "valuation_metrics/pkg/core/valuation"
)

var runLog *store.RunLog

// InitHandler wires an optional run log. Passing nil disables persistence;
// the endpoints work the same either way.
func InitHandler(log *store.RunLog) {
	runLog = log
}

// preflight applies CORS headers and answers OPTIONS requests.
// Returns true when the request is fully handled.
func preflight(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeComputeError maps the core's typed errors onto HTTP statuses.
func writeComputeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, core.ErrDegenerateDenominator) || errors.Is(err, core.ErrInsufficientData) {
		status = http.StatusUnprocessableEntity
	}
	http.Error(w, err.Error(), status)
}

// logRun records a successful computation if a run log is configured.
func logRun(model string, inputs, outputs map[string]float64) {
	if runLog == nil {
		return
	}
	entry := &store.RunEntry{Model: model, Inputs: inputs, Outputs: outputs}
	if err := runLog.Save(context.Background(), entry); err != nil {
		fmt.Printf("[WARNING] Failed to log %s run: %v\n", model, err)
	}
}

type WACCRequest struct {
	EquityValue  float64 `json:"equity_value"`
	DebtValue    float64 `json:"debt_value"`
	CostOfEquity float64 `json:"cost_of_equity"`
	CostOfDebt   float64 `json:"cost_of_debt"`
	TaxRate      float64 `json:"tax_rate"`
}

type WACCResponse struct {
	WACC               float64 `json:"wacc"`
	WeightEquity       float64 `json:"weight_equity"`
	WeightDebt         float64 `json:"weight_debt"`
	AfterTaxCostOfDebt float64 `json:"after_tax_cost_of_debt"`
}

func HandleWACC(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req WACCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := core.CalculateWACC(core.WACCInput{
		EquityValue:  req.EquityValue,
		DebtValue:    req.DebtValue,
		CostOfEquity: req.CostOfEquity,
		CostOfDebt:   req.CostOfDebt,
		TaxRate:      req.TaxRate,
	})
	if err != nil {
		writeComputeError(w, err)
		return
	}

	logRun("wacc",
		map[string]float64{
			"equity_value": req.EquityValue, "debt_value": req.DebtValue,
			"cost_of_equity": req.CostOfEquity, "cost_of_debt": req.CostOfDebt,
			"tax_rate": req.TaxRate,
		},
		map[string]float64{"wacc": res.WACC})

	writeJSON(w, WACCResponse{
		WACC:               res.WACC,
		WeightEquity:       res.WeightEquity,
		WeightDebt:         res.WeightDebt,
		AfterTaxCostOfDebt: res.AfterTaxCostOfDebt,
	})
}

type CostOfEquityRequest struct {
	RiskFreeRate      float64 `json:"risk_free_rate"`
	Beta              float64 `json:"beta"`
	MarketRiskPremium float64 `json:"market_risk_premium"`
}

func HandleCostOfEquity(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req CostOfEquityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ke := core.CostOfEquity(req.RiskFreeRate, req.Beta, req.MarketRiskPremium)
	logRun("cost_of_equity",
		map[string]float64{"risk_free_rate": req.RiskFreeRate, "beta": req.Beta, "market_risk_premium": req.MarketRiskPremium},
		map[string]float64{"cost_of_equity": ke})

	writeJSON(w, map[string]float64{"cost_of_equity": ke})
}

type TerminalGrowthGDPRequest struct {
	RealGDPGrowth    float64  `json:"real_gdp_growth"`
	InflationRate    float64  `json:"inflation_rate"`
	AdjustmentFactor *float64 `json:"adjustment_factor,omitempty"` // Defaults to 1.0
}

func HandleTerminalGrowthGDP(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req TerminalGrowthGDPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	factor := 1.0
	if req.AdjustmentFactor != nil {
		factor = *req.AdjustmentFactor
	}
	g := core.TerminalGrowthGDPAdjusted(req.RealGDPGrowth, req.InflationRate, factor)
	logRun("terminal_growth_gdp",
		map[string]float64{"real_gdp_growth": req.RealGDPGrowth, "inflation_rate": req.InflationRate, "adjustment_factor": factor},
		map[string]float64{"terminal_growth": g})

	writeJSON(w, map[string]float64{"terminal_growth": g})
}

type TerminalGrowthReinvestmentRequest struct {
	ReturnOnCapital  float64 `json:"return_on_capital"`
	ReinvestmentRate float64 `json:"reinvestment_rate"`
}

func HandleTerminalGrowthReinvestment(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req TerminalGrowthReinvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g := core.TerminalGrowthReinvestment(req.ReturnOnCapital, req.ReinvestmentRate)
	logRun("terminal_growth_reinvestment",
		map[string]float64{"return_on_capital": req.ReturnOnCapital, "reinvestment_rate": req.ReinvestmentRate},
		map[string]float64{"terminal_growth": g})

	writeJSON(w, map[string]float64{"terminal_growth": g})
}

type ReinvestmentRateRequest struct {
	Capex                float64 `json:"capex"`
	Depreciation         float64 `json:"depreciation"`
	WorkingCapitalChange float64 `json:"working_capital_change"`
	EBIT                 float64 `json:"ebit"`
	TaxRate              float64 `json:"tax_rate"`
}

func HandleReinvestmentRate(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req ReinvestmentRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rate, err := core.ReinvestmentRate(req.Capex, req.Depreciation, req.WorkingCapitalChange, req.EBIT, req.TaxRate)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	logRun("reinvestment_rate",
		map[string]float64{
			"capex": req.Capex, "depreciation": req.Depreciation,
			"working_capital_change": req.WorkingCapitalChange,
			"ebit":                   req.EBIT, "tax_rate": req.TaxRate,
		},
		map[string]float64{"reinvestment_rate": rate})

	writeJSON(w, map[string]float64{"reinvestment_rate": rate})
}

type TerminalValueRequest struct {
	FinalCashFlow      float64 `json:"final_cash_flow"`
	TerminalGrowthRate float64 `json:"terminal_growth_rate"`
	DiscountRate       float64 `json:"discount_rate"`
}

func HandleTerminalValue(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req TerminalValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tv, err := core.TerminalValue(req.FinalCashFlow, req.TerminalGrowthRate, req.DiscountRate)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	logRun("terminal_value",
		map[string]float64{
			"final_cash_flow":      req.FinalCashFlow,
			"terminal_growth_rate": req.TerminalGrowthRate,
			"discount_rate":        req.DiscountRate,
		},
		map[string]float64{"terminal_value": tv})

	writeJSON(w, map[string]float64{"terminal_value": tv})
}

type GrowthAnalysisRequest struct {
	HistoricalData []float64 `json:"historical_data"`
	Periods        int       `json:"periods,omitempty"` // 0 = full series
}

func HandleGrowthAnalysis(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req GrowthAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := core.HistoricalGrowthAnalysisWindow(req.HistoricalData, req.Periods)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	logRun("growth_analysis",
		map[string]float64{"points": float64(len(req.HistoricalData)), "periods": float64(req.Periods)},
		map[string]float64{
			"mean_growth":   res.MeanGrowth,
			"median_growth": res.MedianGrowth,
			"std_dev":       res.StdDev,
			"min_growth":    res.MinGrowth,
			"max_growth":    res.MaxGrowth,
		})

	writeJSON(w, res)
}
