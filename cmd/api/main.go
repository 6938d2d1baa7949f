package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"valuation_metrics/pkg/api/valuation"
	"valuation_metrics/pkg/core/store"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// MarketAssumptions are the default macro inputs served to clients so they
// can pre-fill requests. They are advisory only; every endpoint computes
// from the explicit inputs it receives.
type MarketAssumptions struct {
	RiskFreeRate      float64 `yaml:"risk_free_rate" json:"risk_free_rate"`
	MarketRiskPremium float64 `yaml:"market_risk_premium" json:"market_risk_premium"`
	TaxRate           float64 `yaml:"tax_rate" json:"tax_rate"`
	RealGDPGrowth     float64 `yaml:"real_gdp_growth" json:"real_gdp_growth"`
	InflationRate     float64 `yaml:"inflation_rate" json:"inflation_rate"`
}

func main() {
	// Load environment variables
	godotenv.Load()

	// Load default market assumptions
	assumptions := MarketAssumptions{}
	configData, err := os.ReadFile("config/assumptions.yaml")
	if err != nil {
		fmt.Printf("[WARNING] Failed to read config/assumptions.yaml: %v\n", err)
		fmt.Println("  Serving zero-valued defaults")
	} else if err := yaml.Unmarshal(configData, &assumptions); err != nil {
		fmt.Printf("[WARNING] Failed to parse config/assumptions.yaml: %v\n", err)
	}

	// Initialize run persistence.
	// DB when DATABASE_URL is set, otherwise local file log.
	ctx := context.Background()
	var runLog *store.RunLog
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			fmt.Printf("[WARNING] DB init failed, falling back to file log: %v\n", err)
			runLog = store.NewRunLog(nil, "")
		} else {
			runLog = store.NewRunLog(store.GetPool(), "")
			defer store.Close()
			fmt.Println("[STORE] Run log backed by Postgres")
		}
	} else {
		runLog = store.NewRunLog(nil, "")
		fmt.Println("[STORE] Run log backed by local files (.cache/valuation/runs)")
	}

	// Valuation endpoints
	valuation.InitHandler(runLog)
	http.HandleFunc("/api/valuation/wacc", valuation.HandleWACC)
	http.HandleFunc("/api/valuation/cost-of-equity", valuation.HandleCostOfEquity)
	http.HandleFunc("/api/valuation/terminal-growth/gdp", valuation.HandleTerminalGrowthGDP)
	http.HandleFunc("/api/valuation/terminal-growth/reinvestment", valuation.HandleTerminalGrowthReinvestment)
	http.HandleFunc("/api/valuation/reinvestment-rate", valuation.HandleReinvestmentRate)
	http.HandleFunc("/api/valuation/terminal-value", valuation.HandleTerminalValue)
	http.HandleFunc("/api/valuation/growth-analysis", valuation.HandleGrowthAnalysis)

	// Default assumptions endpoint
	http.HandleFunc("/api/assumptions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(assumptions)
	})

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - GET  /api/assumptions")
	fmt.Println("  - POST /api/valuation/wacc")
	fmt.Println("  - POST /api/valuation/cost-of-equity")
	fmt.Println("  - POST /api/valuation/terminal-growth/gdp")
	fmt.Println("  - POST /api/valuation/terminal-growth/reinvestment")
	fmt.Println("  - POST /api/valuation/reinvestment-rate")
	fmt.Println("  - POST /api/valuation/terminal-value")
	fmt.Println("  - POST /api/valuation/growth-analysis")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
