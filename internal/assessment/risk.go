package assessment

import (
	"errors"
	"fmt"
)

// Probability and severity rating bounds (5x5 matrix).
const (
	MinRating = 1
	MaxRating = 5
)

// Risk level labels, from lowest to highest band.
const (
	LevelLow      = "low"
	LevelMedium   = "medium"
	LevelHigh     = "high"
	LevelVeryHigh = "very high"
)

// Error definitions for threshold validation
var (
	// ErrThresholdOrder is returned when the thresholds triple is not
	// strictly ascending.
	ErrThresholdOrder = errors.New("risk matrix thresholds must be strictly ascending")

	// ErrThresholdRange is returned when a threshold lies outside the
	// possible score range of the 5x5 matrix.
	ErrThresholdRange = errors.New("risk matrix thresholds must lie within 1..25")
)

// Thresholds is the ascending triple of probability x severity score
// boundaries separating the low/medium/high/very-high bands.
type Thresholds [3]int

// DefaultThresholds returns the standard 5x5 matrix boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{6, 12, 16}
}

// Low returns the upper bound (inclusive) of the low band.
func (t Thresholds) Low() int { return t[0] }

// Mid returns the upper bound (inclusive) of the medium band.
func (t Thresholds) Mid() int { return t[1] }

// High returns the upper bound (inclusive) of the high band.
func (t Thresholds) High() int { return t[2] }

// Validate checks that the triple is strictly ascending and within the
// score range. Scoring assumes a valid triple; callers must validate at the
// edit boundary, otherwise classification silently breaks.
func (t Thresholds) Validate() error {
	for _, v := range t {
		if v < MinRating || v > MaxRating*MaxRating {
			return fmt.Errorf("%w: got %v", ErrThresholdRange, t)
		}
	}
	if t[0] >= t[1] || t[1] >= t[2] {
		return fmt.Errorf("%w: got %v", ErrThresholdOrder, t)
	}
	return nil
}

// RatingError reports a probability or severity value outside 1..5.
type RatingError struct {
	Field string
	Value int
}

func (e *RatingError) Error() string {
	return fmt.Sprintf("%s rating %d out of range [%d,%d]", e.Field, e.Value, MinRating, MaxRating)
}

// ComputeRisk maps a probability and severity rating to the numeric risk
// score and its level label. Pure and total for inputs within 1..5 and a
// valid thresholds triple; boundary scores map to the lower band.
func ComputeRisk(prob, sev int, t Thresholds) (int, string) {
	v := prob * sev
	switch {
	case v <= t.Low():
		return v, LevelLow
	case v <= t.Mid():
		return v, LevelMedium
	case v <= t.High():
		return v, LevelHigh
	default:
		return v, LevelVeryHigh
	}
}
