/*
PURPOSE:
  High-level runner that processes a batch of sensor packages.
  For each package: build the calculator, compute the report, print it.

REQUIREMENTS:
  User-specified:
  - One report line per package on stdout.
  - Log results to CSV/JSON when an output directory is configured.

  Implementation-discovered:
  - One bad package must not stop the batch.
  - Every record of a batch carries the same run id.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/training, internal/output, internal/config

ERROR HANDLING:
  - Logs errors but continues (resilience).
  - Failed packages and failed result writes are counted in Summary.
  - Setup errors (output dir, writers, locale) abort the run.

IMPLEMENTATION RULES:
  - Sequential iteration, input order preserved.

USAGE:
  summary, err := engine.Run(cfg, cfg.Packages, os.Stdout)

RELATED FILES:
  - internal/training/package.go
*/

package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/daryltucker/fitness-tracker/internal/config"
	"github.com/daryltucker/fitness-tracker/internal/model"
	"github.com/daryltucker/fitness-tracker/internal/output"
	"github.com/daryltucker/fitness-tracker/internal/training"
	"github.com/google/uuid"
)

// Summary describes a finished batch.
type Summary struct {
	RunID     string
	Processed int
	Failed    int
	// WriteErrors counts result records that could not be written to a
	// result file.
	WriteErrors int
}

type resultWriter interface {
	Write(model.Result) error
	Close() error
}

// Process computes the report of a single package and renders it with labels.
func Process(p model.Package, labels output.Labels) (model.Report, string, error) {
	t, err := training.ReadPackage(p.Code, p.Data)
	if err != nil {
		return model.Report{}, "", err
	}
	report := training.ShowTrainingInfo(t)
	return report, output.FormatMessage(report, labels), nil
}

// Run processes packages in order and writes one report line per
// successful package to out.
func Run(cfg *config.Config, packages []model.Package, out io.Writer) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}

	labels, err := output.LabelsFor(cfg.Locale)
	if err != nil {
		return summary, err
	}

	writers, err := openWriters(cfg)
	if err != nil {
		return summary, err
	}
	return run(summary, packages, labels, writers, out)
}

func run(summary Summary, packages []model.Package, labels output.Labels, writers []resultWriter, out io.Writer) (Summary, error) {
	defer func() {
		for _, w := range writers {
			if err := w.Close(); err != nil {
				output.Logger.Error("Failed to close result file", "error", err)
			}
		}
	}()

	output.Logger.Debug("Processing packages", "run_id", summary.RunID, "count", len(packages))

	for i, p := range packages {
		res := model.Result{
			RunID:     summary.RunID,
			Index:     i,
			Timestamp: time.Now().UTC(),
			Package:   p,
		}

		report, msg, err := Process(p, labels)
		summary.Processed++
		if err != nil {
			summary.Failed++
			res.Error = err.Error()
			output.Logger.Error("Package failed", "index", i, "package", p.String(), "error", err)
		} else {
			res.Report = &report
			res.Message = msg
			if _, err := fmt.Fprintln(out, msg); err != nil {
				return summary, fmt.Errorf("failed to write report: %w", err)
			}
		}

		for _, w := range writers {
			if err := w.Write(res); err != nil {
				summary.WriteErrors++
				output.Logger.Error("Failed to write result", "index", i, "error", err)
			}
		}
	}

	output.Logger.Debug("Batch complete", "run_id", summary.RunID,
		"processed", summary.Processed, "failed", summary.Failed, "write_errors", summary.WriteErrors)
	return summary, nil
}

func openWriters(cfg *config.Config) ([]resultWriter, error) {
	if cfg.OutputDir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	csvPath := filepath.Join(cfg.OutputDir, cfg.OutputFile)
	csvWriter, err := output.NewCSVWriter(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to init CSV writer at %s: %w", csvPath, err)
	}

	jsonPath := filepath.Join(cfg.OutputDir, cfg.JSONFile)
	jsonWriter, err := output.NewJSONWriter(jsonPath)
	if err != nil {
		csvWriter.Close()
		return nil, fmt.Errorf("failed to init JSON writer at %s: %w", jsonPath, err)
	}

	output.Logger.Info("Writing results", "csv", csvPath, "json", jsonPath)
	return []resultWriter{csvWriter, jsonWriter}, nil
}
