package training

const (
	runningLenStep = 0.65

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

// Running is a run measured in steps.
type Running struct {
	training
}

// NewRunning builds a running calculator.
func NewRunning(action int, duration, weight float64) (*Running, error) {
	base, err := newTraining(action, duration, weight, runningLenStep)
	if err != nil {
		return nil, err
	}
	r := &Running{training: base}
	if err := checkMetrics(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Running) TrainingType() string {
	return CodeRunning.TrainingType()
}

func (r *Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.weight / mInKm * r.durationMin()
}
