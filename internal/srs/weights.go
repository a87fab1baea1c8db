package srs

import (
	"fmt"
	"math"
)

// WeightCount is the length of the weight vector.
const WeightCount = 17

// Weights is the fixed FSRS weight vector. It is a value type so a Scheduler
// owns its own copy and nothing can change it after construction.
//
//	w[0..3]   initial stability for Again/Hard/Good/Easy
//	w[4..5]   initial difficulty
//	w[6..7]   difficulty step and mean reversion
//	w[8..10]  recall stability growth
//	w[11]     Hard multiplier of the growth term
//	w[12]     Easy multiplier of the growth term
//	w[13..16] reserved (forget curve), kept for parity with stored configs
type Weights [WeightCount]float64

// DefaultWeights are the production weights.
var DefaultWeights = Weights{
	0.4, 0.6, 2.4, 5.8,
	4.93, 0.94,
	0.86, 0.01,
	1.49, 0.14, 0.94,
	2.18, 0.05,
	0.34, 1.26, 0.29, 2.61,
}

// WeightsFromSlice converts a configured weight list. An empty slice yields DefaultWeights.
func WeightsFromSlice(ws []float64) (Weights, error) {
	if len(ws) == 0 {
		return DefaultWeights, nil
	}
	if len(ws) != WeightCount {
		return Weights{}, fmt.Errorf("%w: want %d values, got %d", ErrInvalidWeights, WeightCount, len(ws))
	}
	var w Weights
	copy(w[:], ws)
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

// Validate checks the constraints the formulas rely on.
func (w Weights) Validate() error {
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: w[%d] is not finite", ErrInvalidWeights, i)
		}
	}
	for i := 0; i < 4; i++ {
		if w[i] <= 0 {
			return fmt.Errorf("%w: w[%d] = %f must be positive", ErrInvalidWeights, i, w[i])
		}
		if i > 0 && w[i] <= w[i-1] {
			return fmt.Errorf("%w: initial stabilities must be strictly increasing (w[%d] = %f)", ErrInvalidWeights, i, w[i])
		}
	}
	if w[5] <= 0 {
		return fmt.Errorf("%w: w[5] = %f must be positive", ErrInvalidWeights, w[5])
	}
	if w[7] < 0 || w[7] > 1 {
		return fmt.Errorf("%w: w[7] = %f must be within [0, 1]", ErrInvalidWeights, w[7])
	}
	if w[9] < 0 {
		return fmt.Errorf("%w: w[9] = %f must not be negative", ErrInvalidWeights, w[9])
	}
	if w[10] <= 0 {
		return fmt.Errorf("%w: w[10] = %f must be positive", ErrInvalidWeights, w[10])
	}
	// Hard > Good > Easy for recall growth
	if w[11] <= 1 {
		return fmt.Errorf("%w: w[11] = %f must be greater than 1", ErrInvalidWeights, w[11])
	}
	if w[12] <= 0 || w[12] >= 1 {
		return fmt.Errorf("%w: w[12] = %f must be within (0, 1)", ErrInvalidWeights, w[12])
	}
	return nil
}
