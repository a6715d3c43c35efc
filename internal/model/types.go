/*
PURPOSE:
  Defines the core data structures used throughout the fitness tracker.
  These models represent sensor packages, workout reports and the result
  records written for every processed package.

REQUIREMENTS:
  User-specified:
  - Report workout type, duration, distance, mean speed and calories.

  Implementation-discovered:
  - Need JSON tags for the JSON Lines output.
  - Need YAML tags so packages can live in the config file.

ARCHITECTURE INTEGRATION:
  - Used by: internal/training, internal/engine, internal/output, internal/config
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Units live in the field tags (km, km/h, kcal).

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update when adding new metrics to capture.
*/

package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Package is a single batch of sensor readings for one workout.
type Package struct {
	Code string    `yaml:"code" json:"code"`
	Data []float64 `yaml:"data" json:"data"`
}

// String renders the package in the CODE:n,n,n form accepted by the CLI.
func (p Package) String() string {
	values := make([]string, len(p.Data))
	for i, v := range p.Data {
		values[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprintf("%s:%s", p.Code, strings.Join(values, ","))
}

// Report holds the computed metrics of one workout.
type Report struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration_h"`
	Distance     float64 `json:"distance_km"`
	Speed        float64 `json:"mean_speed_kmh"`
	Calories     float64 `json:"calories_kcal"`
}

// Result represents the outcome of processing a single package.
type Result struct {
	RunID     string    `json:"run_id"`
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	Package   Package   `json:"package"`
	// Report is nil when the package failed, so no metrics are written.
	*Report `json:",omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"` // If the package failed
}
