package training

import "fmt"

const (
	walkingLenStep = 0.65
	kmhInMsec      = 0.278
	cmInM          = 100

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a walk measured in steps. Calories depend on height.
type SportsWalking struct {
	training
	height float64
}

// NewSportsWalking builds a walking calculator. height is in cm.
func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	base, err := newTraining(action, duration, weight, walkingLenStep)
	if err != nil {
		return nil, err
	}
	if !positive(height) {
		return nil, fmt.Errorf("%w: height must be positive and finite, got %v", ErrInvalidInput, height)
	}
	w := &SportsWalking{training: base, height: height}
	if err := checkMetrics(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *SportsWalking) TrainingType() string {
	return CodeWalking.TrainingType()
}

func (w *SportsWalking) SpentCalories() float64 {
	speedMs := w.MeanSpeed() * kmhInMsec
	heightM := w.height / cmInM
	return (walkingCaloriesWeightMultiplier*w.weight +
		(speedMs*speedMs/heightM)*walkingSpeedHeightMultiplier*w.weight) * w.durationMin()
}
