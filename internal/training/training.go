/*
PURPOSE:
  Defines the workout calculator contract and the shared base behavior.
  Every workout variant (Running, SportsWalking, Swimming) computes distance,
  mean speed and spent calories from raw sensor readings.

REQUIREMENTS:
  User-specified:
  - Distance in km, mean speed in km/h, calories in kcal.
  - Calories have no generic formula; each variant supplies its own.

  Implementation-discovered:
  - The base struct deliberately does not implement SpentCalories, so it
    never satisfies Training on its own.
  - Step length is set by each variant constructor, never inherited.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/cli
  - Produces: internal/model.Report

ERROR HANDLING:
  - Constructors validate inputs and the resulting metrics, so metric
    methods never fail and never return NaN or Inf.

IMPLEMENTATION RULES:
  - float64 everywhere. No rounding here, formatting rounds.
  - Fields are unexported: a calculator is immutable once built.

USAGE:
  t, err := training.ReadPackage("RUN", []float64{15000, 1, 75})
  report := training.ShowTrainingInfo(t)

RELATED FILES:
  - internal/training/package.go
  - internal/output/message.go

MAINTENANCE:
  - New workout types need a Code, a constructor and a ReadPackage case.
*/

package training

import (
	"fmt"
	"math"

	"github.com/daryltucker/fitness-tracker/internal/model"
)

const (
	mInKm  = 1000
	minInH = 60
)

// Training is a constructed workout calculator.
type Training interface {
	// TrainingType is the human readable variant name used in reports.
	TrainingType() string
	// Duration returns the workout duration in hours.
	Duration() float64
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the average speed over the whole workout in km/h.
	MeanSpeed() float64
	// SpentCalories returns the burned energy in kcal.
	SpentCalories() float64
}

// training holds the readings every workout shares.
type training struct {
	action   int
	duration float64
	weight   float64
	lenStep  float64
}

func newTraining(action int, duration, weight, lenStep float64) (training, error) {
	if action < 0 {
		return training{}, fmt.Errorf("%w: action count must not be negative, got %d", ErrInvalidInput, action)
	}
	if !positive(duration) {
		return training{}, fmt.Errorf("%w: duration must be positive and finite, got %v", ErrInvalidInput, duration)
	}
	if !positive(weight) {
		return training{}, fmt.Errorf("%w: weight must be positive and finite, got %v", ErrInvalidInput, weight)
	}
	return training{
		action:   action,
		duration: duration,
		weight:   weight,
		lenStep:  lenStep,
	}, nil
}

// positive reports whether v is finite and greater than zero.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// nonNegative reports whether v is finite and not below zero.
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// checkMetrics rejects readings whose metrics overflow or are undefined,
// e.g. a duration so small that the speed becomes infinite.
func checkMetrics(t Training) error {
	metrics := []struct {
		name  string
		value float64
	}{
		{"distance", t.Distance()},
		{"mean speed", t.MeanSpeed()},
		{"calories", t.SpentCalories()},
	}
	for _, m := range metrics {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) {
			return fmt.Errorf("%w: %s is not finite for these readings", ErrInvalidInput, m.name)
		}
	}
	return nil
}

func (t training) Duration() float64 {
	return t.duration
}

func (t training) Distance() float64 {
	return float64(t.action) * t.lenStep / mInKm
}

func (t training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}

func (t training) durationMin() float64 {
	return t.duration * minInH
}

// ShowTrainingInfo collects the metrics of t into a report.
func ShowTrainingInfo(t Training) model.Report {
	return model.Report{
		TrainingType: t.TrainingType(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
