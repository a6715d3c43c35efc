package training

import "fmt"

const (
	swimmingLenStep = 1.38

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swim. action counts strokes; speed comes from the
// pool geometry instead of the stroke length.
type Swimming struct {
	training
	lengthPool float64
	countPool  float64
}

// NewSwimming builds a swimming calculator. lengthPool is in meters,
// countPool is the number of laps.
func NewSwimming(action int, duration, weight, lengthPool, countPool float64) (*Swimming, error) {
	base, err := newTraining(action, duration, weight, swimmingLenStep)
	if err != nil {
		return nil, err
	}
	if !nonNegative(lengthPool) {
		return nil, fmt.Errorf("%w: pool length must be finite and not negative, got %v", ErrInvalidInput, lengthPool)
	}
	if !nonNegative(countPool) {
		return nil, fmt.Errorf("%w: lap count must be finite and not negative, got %v", ErrInvalidInput, countPool)
	}
	s := &Swimming{training: base, lengthPool: lengthPool, countPool: countPool}
	if err := checkMetrics(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Swimming) TrainingType() string {
	return CodeSwimming.TrainingType()
}

// MeanSpeed overrides the step based speed.
func (s *Swimming) MeanSpeed() float64 {
	return s.lengthPool * s.countPool / mInKm / s.duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.weight * s.duration
}
