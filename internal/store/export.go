// Package store exports optimization run results to JSON and CSV.
package store

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/san-kum/swarmopt/internal/config"
	"github.com/san-kum/swarmopt/internal/runner"
)

type ExportData struct {
	Benchmark    string             `json:"benchmark"`
	Dim          int                `json:"dim"`
	Particles    int                `json:"particles"`
	Generations  int                `json:"generations"`
	Schedule     string             `json:"schedule"`
	Direction    string             `json:"direction"`
	Seed         int64              `json:"seed"`
	BestPosition []float64          `json:"best_position"`
	BestFitness  float64            `json:"best_fitness"`
	Trace        []float64          `json:"trace"`
	Metrics      map[string]float64 `json:"metrics"`
}

func exportData(cfg *config.Config, result *runner.Result) ExportData {
	return ExportData{
		Benchmark:    cfg.Benchmark,
		Dim:          cfg.Dim,
		Particles:    cfg.Particles,
		Generations:  result.Generations,
		Schedule:     cfg.Schedule,
		Direction:    cfg.Direction,
		Seed:         cfg.Seed,
		BestPosition: result.BestPosition,
		BestFitness:  result.BestFitness,
		Trace:        result.Trace,
		Metrics:      result.Metrics,
	}
}

func ExportJSON(path string, cfg *config.Config, result *runner.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(cfg, result))
}

// ExportCSV writes the convergence trace as generation,best rows.
func ExportCSV(path string, result *runner.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"generation", "best_fitness"}); err != nil {
		return err
	}
	for i, best := range result.Trace {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(best, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
