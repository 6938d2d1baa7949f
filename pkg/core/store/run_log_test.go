package store

import (
	"context"
	"testing"
	"time"
)

func TestRunLogFileFallback(t *testing.T) {
	dir := t.TempDir()
	log := NewRunLog(nil, dir)
	ctx := context.Background()

	entry := &RunEntry{
		Model:   "wacc",
		Inputs:  map[string]float64{"equity_value": 1000000, "debt_value": 500000},
		Outputs: map[string]float64{"wacc": 0.0792},
	}
	if err := log.Save(ctx, entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("Expected Save to assign an ID")
	}
	if entry.ComputedAt.IsZero() {
		t.Fatal("Expected Save to stamp ComputedAt")
	}

	got, err := log.Get(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected stored entry, got nil")
	}
	if got.Model != "wacc" {
		t.Errorf("Expected model wacc, got %s", got.Model)
	}
	if got.Outputs["wacc"] != 0.0792 {
		t.Errorf("Expected output 0.0792, got %f", got.Outputs["wacc"])
	}
}

func TestRunLogGetMiss(t *testing.T) {
	log := NewRunLog(nil, t.TempDir())

	got, err := log.Get(context.Background(), "missing-id")
	if err != nil {
		t.Fatalf("Miss should not error, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil on miss, got %+v", got)
	}
}

func TestRunLogListByModel(t *testing.T) {
	dir := t.TempDir()
	log := NewRunLog(nil, dir)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		entry := &RunEntry{
			Model:      "terminal_value",
			Inputs:     map[string]float64{"discount_rate": 0.08},
			Outputs:    map[string]float64{"terminal_value": float64(2000 + i)},
			ComputedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := log.Save(ctx, entry); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}
	// Different model, must be filtered out
	if err := log.Save(ctx, &RunEntry{Model: "wacc", Outputs: map[string]float64{"wacc": 0.08}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := log.ListByModel(ctx, "terminal_value", 2)
	if err != nil {
		t.Fatalf("ListByModel failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	// Newest first
	if entries[0].Outputs["terminal_value"] != 2002 {
		t.Errorf("Expected newest run first (2002), got %f", entries[0].Outputs["terminal_value"])
	}
}
