package training

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnknownWorkout is returned for a workout code outside the supported set.
	ErrUnknownWorkout = errors.New("unknown workout type")
	// ErrArityMismatch is returned when a package carries the wrong number of readings.
	ErrArityMismatch = errors.New("wrong number of readings")
	// ErrInvalidInput is returned for readings no formula can use.
	ErrInvalidInput = errors.New("invalid reading")
)

// Code identifies a workout type in a sensor package.
type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

// Codes lists the supported workout codes.
func Codes() []Code {
	return []Code{CodeSwimming, CodeRunning, CodeWalking}
}

// ParseCode validates a raw workout code.
func ParseCode(s string) (Code, error) {
	switch c := Code(s); c {
	case CodeSwimming, CodeRunning, CodeWalking:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWorkout, s)
}

// TrainingType returns the name of the calculator built for c.
func (c Code) TrainingType() string {
	switch c {
	case CodeSwimming:
		return "Swimming"
	case CodeRunning:
		return "Running"
	case CodeWalking:
		return "SportsWalking"
	}
	return ""
}

// Params names the positional readings expected for c, in order.
func (c Code) Params() []string {
	switch c {
	case CodeSwimming:
		return []string{"action", "duration", "weight", "length_pool", "count_pool"}
	case CodeRunning:
		return []string{"action", "duration", "weight"}
	case CodeWalking:
		return []string{"action", "duration", "weight", "height"}
	}
	return nil
}

// ReadPackage builds the calculator for code from positional sensor data.
func ReadPackage(code string, data []float64) (Training, error) {
	c, err := ParseCode(code)
	if err != nil {
		return nil, err
	}

	params := c.Params()
	if len(data) != len(params) {
		return nil, fmt.Errorf("%w: %s expects %d values (%s), got %d",
			ErrArityMismatch, c, len(params), strings.Join(params, ", "), len(data))
	}

	action, err := actionCount(data[0])
	if err != nil {
		return nil, err
	}

	switch c {
	case CodeSwimming:
		s, err := NewSwimming(action, data[1], data[2], data[3], data[4])
		if err != nil {
			return nil, err
		}
		return s, nil
	case CodeRunning:
		r, err := NewRunning(action, data[1], data[2])
		if err != nil {
			return nil, err
		}
		return r, nil
	case CodeWalking:
		w, err := NewSportsWalking(action, data[1], data[2], data[3])
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWorkout, code)
}

// actionCount converts the first reading into a whole, non-negative count.
func actionCount(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: action count must be a whole number, got %v", ErrInvalidInput, v)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: action count must not be negative, got %v", ErrInvalidInput, v)
	}
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: action count too large, got %v", ErrInvalidInput, v)
	}
	return int(v), nil
}
