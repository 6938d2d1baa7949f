package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RunLog records computed valuation runs so callers can audit which inputs
// produced which numbers. Hybrid: DB (Primary) + File System (Fallback/Local).
type RunLog struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewRunLog creates a new run log.
// If pool is nil, it falls back to a file-based log in the specified
// directory. If dir is also empty, it defaults to .cache/valuation/runs.
func NewRunLog(pool *pgxpool.Pool, dir string) *RunLog {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "valuation", "runs")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check RunLog dir: %v\n", err)
		}
	}
	return &RunLog{pool: pool, fileDir: dir}
}

// RunEntry represents one stored model run
type RunEntry struct {
	ID         string             `json:"id"`
	Model      string             `json:"model"` // e.g. "wacc", "terminal_value", "growth_analysis"
	Inputs     map[string]float64 `json:"inputs"`
	Outputs    map[string]float64 `json:"outputs"`
	ComputedAt time.Time          `json:"computed_at"`
}

// Save stores a run. An empty ID is assigned a fresh UUID; a zero
// ComputedAt is stamped with the current time.
func (l *RunLog) Save(ctx context.Context, entry *RunEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.ComputedAt.IsZero() {
		entry.ComputedAt = time.Now()
	}

	// 1. Save to DB
	if l.pool != nil {
		inputsJSON, err := json.Marshal(entry.Inputs)
		if err != nil {
			return fmt.Errorf("failed to marshal inputs: %w", err)
		}
		outputsJSON, err := json.Marshal(entry.Outputs)
		if err != nil {
			return fmt.Errorf("failed to marshal outputs: %w", err)
		}

		query := `
			INSERT INTO valuation_runs (id, model, inputs, outputs, computed_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id)
			DO UPDATE SET
				inputs = EXCLUDED.inputs,
				outputs = EXCLUDED.outputs,
				computed_at = EXCLUDED.computed_at
		`
		if _, err := l.pool.Exec(ctx, query,
			entry.ID, entry.Model, inputsJSON, outputsJSON, entry.ComputedAt,
		); err != nil {
			return fmt.Errorf("failed to save run to db: %w", err)
		}
		return nil
	}

	// 2. Save to File
	if l.fileDir != "" {
		fileBytes, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal run entry: %w", err)
		}
		if err := os.WriteFile(l.entryPath(entry.ID), fileBytes, 0644); err != nil {
			return fmt.Errorf("failed to save run to file: %w", err)
		}
	}

	return nil
}

// Get retrieves a run by ID. Returns (nil, nil) on a miss.
func (l *RunLog) Get(ctx context.Context, id string) (*RunEntry, error) {
	if l.pool != nil {
		query := `
			SELECT id, model, inputs, outputs, computed_at
			FROM valuation_runs
			WHERE id = $1
			LIMIT 1
		`
		var entry RunEntry
		var inputsJSON, outputsJSON []byte
		err := l.pool.QueryRow(ctx, query, id).Scan(
			&entry.ID, &entry.Model, &inputsJSON, &outputsJSON, &entry.ComputedAt,
		)
		if err != nil {
			return nil, nil // Miss
		}
		if err := json.Unmarshal(inputsJSON, &entry.Inputs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored inputs: %w", err)
		}
		if err := json.Unmarshal(outputsJSON, &entry.Outputs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored outputs: %w", err)
		}
		return &entry, nil
	}

	if l.fileDir != "" {
		return l.loadEntry(l.entryPath(id))
	}

	return nil, nil
}

// ListByModel returns the most recent runs for a model, newest first.
func (l *RunLog) ListByModel(ctx context.Context, model string, limit int) ([]*RunEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	if l.pool != nil {
		query := `
			SELECT id, model, inputs, outputs, computed_at
			FROM valuation_runs
			WHERE model = $1
			ORDER BY computed_at DESC
			LIMIT $2
		`
		rows, err := l.pool.Query(ctx, query, model, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to query runs: %w", err)
		}
		defer rows.Close()

		var entries []*RunEntry
		for rows.Next() {
			var entry RunEntry
			var inputsJSON, outputsJSON []byte
			if err := rows.Scan(&entry.ID, &entry.Model, &inputsJSON, &outputsJSON, &entry.ComputedAt); err != nil {
				return nil, fmt.Errorf("failed to scan run row: %w", err)
			}
			if err := json.Unmarshal(inputsJSON, &entry.Inputs); err != nil {
				continue
			}
			if err := json.Unmarshal(outputsJSON, &entry.Outputs); err != nil {
				continue
			}
			entries = append(entries, &entry)
		}
		return entries, rows.Err()
	}

	// File fallback: scan the directory. Fine for local use.
	if l.fileDir != "" {
		return l.scanFiles(model, limit)
	}

	return nil, nil
}

// Internal File Helpers

func (l *RunLog) entryPath(id string) string {
	return filepath.Join(l.fileDir, id+".json")
}

func (l *RunLog) loadEntry(path string) (*RunEntry, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil // Not found
	}
	var entry RunEntry
	if err := json.Unmarshal(fileBytes, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (l *RunLog) scanFiles(model string, limit int) ([]*RunEntry, error) {
	files, err := os.ReadDir(l.fileDir)
	if err != nil {
		return nil, nil
	}

	var entries []*RunEntry
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".json" {
			continue
		}
		entry, err := l.loadEntry(filepath.Join(l.fileDir, f.Name()))
		if err != nil || entry == nil {
			continue
		}
		if entry.Model == model {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ComputedAt.After(entries[j].ComputedAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
