package srs

import "math"

const (
	minStability = 0.1
	// 100 years. Keeps the due date far below the time.Duration range.
	maxIntervalDays = 36500
	// Lower bound of 1-R in the growth term, so a review at the instant of the
	// previous one still separates Hard, Good and Easy.
	minRecallGap  = 1e-3
	minDifficulty = 1.0
	maxDifficulty = 10.0

	decay  = -0.5
	factor = 19.0 / 81.0

	learningShrink   = 0.5
	lapseShrink      = 0.2
	shortStepMinutes = 1
)

// algo evaluates the memory model for one weight vector.
type algo struct {
	w Weights
}

// retrievability computes R(t, S) = (1 + FACTOR * t / S) ^ DECAY. R(S, S) = 0.9.
func (a *algo) retrievability(elapsedDays, stability float64) float64 {
	return math.Pow(1+factor*elapsedDays/stability, decay)
}

// initStability returns S0(G) = max(w[G-1], 0.1).
func (a *algo) initStability(r Rating) float64 {
	return clampS(a.w[r-1])
}

// initDifficulty returns D0(G) = clamp(w[4] - (G-3) * w[5]).
func (a *algo) initDifficulty(r Rating) float64 {
	return clampD(a.w[4] - float64(r-3)*a.w[5])
}

// nextDifficulty applies the rating step then reverts toward D0(Good).
func (a *algo) nextDifficulty(d float64, r Rating) float64 {
	dPrime := d - a.w[6]*float64(r-3)
	return clampD(a.w[7]*a.initDifficulty(Good) + (1-a.w[7])*dPrime)
}

// nextRecallStability grows stability after a successful recall.
// S' = S * (1 + e^w[8] * (11-D) * S^(-w[9]) * (e^((1-R)*w[10]) - 1) * m)
// where m is w[11] for Hard, w[12] for Easy and 1 for Good.
// 1-R is floored at minRecallGap so the growth term is always positive.
func (a *algo) nextRecallStability(d, s, r float64, rating Rating) float64 {
	m := 1.0
	switch rating {
	case Hard:
		m = a.w[11]
	case Easy:
		m = a.w[12]
	}
	return clampS(s * (1 + math.Exp(a.w[8])*
		(11-d)*
		math.Pow(s, -a.w[9])*
		(math.Exp(math.Max(1-r, minRecallGap)*a.w[10])-1)*
		m))
}

// reviewDays rounds stability to a whole-day interval within [1, maxIntervalDays].
func reviewDays(s float64) int {
	if s >= maxIntervalDays {
		return maxIntervalDays
	}
	days := int(math.Round(s))
	if days < 1 {
		days = 1
	}
	return days
}

func clampS(s float64) float64 {
	if math.IsNaN(s) {
		return minStability
	}
	if math.IsInf(s, 1) {
		return math.MaxFloat64
	}
	return math.Max(s, minStability)
}

func clampD(d float64) float64 {
	if math.IsNaN(d) {
		return minDifficulty
	}
	return math.Min(math.Max(d, minDifficulty), maxDifficulty)
}
