package srs

import (
	"fmt"
	"time"
)

// Scheduler computes the next state of a card. It holds no mutable state and
// is safe for concurrent use.
type Scheduler struct {
	algo      algo
	formatter *IntervalFormatter
	now       func() time.Time
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the wall clock used when Schedule gets the zero time.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// WithFormatter sets the label formatter used by PreviewSchedule.
func WithFormatter(f *IntervalFormatter) Option {
	return func(s *Scheduler) {
		s.formatter = f
	}
}

// NewScheduler validates w and builds a Scheduler. The default formatter is English.
func NewScheduler(w Weights, opts ...Option) (*Scheduler, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	s := &Scheduler{
		algo: algo{w: w},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.formatter == nil {
		f, err := NewIntervalFormatter(DefaultLocale)
		if err != nil {
			return nil, err
		}
		s.formatter = f
	}
	return s, nil
}

// Schedule applies rating to card at now and returns the next card and its due time.
// The input card is not modified. A zero now means the current time.
func (s *Scheduler) Schedule(card Card, rating Rating, now time.Time) (Outcome, error) {
	if !rating.IsValid() {
		return Outcome{}, fmt.Errorf("%w: %d", ErrInvalidRating, int(rating))
	}
	if now.IsZero() {
		now = s.now()
	}

	c := card.clone()
	c.ElapsedDays = elapsedDays(card.LastReview, now)

	var interval time.Duration
	switch card.State {
	case Learning, Relearning:
		interval = s.fromLearning(&c, rating)
	case Review:
		interval = s.fromReview(&c, rating)
	default:
		// Unknown states are treated as never reviewed.
		c.State = New
		interval = s.fromNew(&c, rating)
	}

	c.Reps++
	reviewedAt := now
	c.LastReview = &reviewedAt

	return Outcome{Card: c, Due: now.Add(interval), Interval: interval}, nil
}

// Preview returns the outcome of every rating without touching card.
func (s *Scheduler) Preview(card Card, now time.Time) map[Rating]Outcome {
	if now.IsZero() {
		now = s.now()
	}
	result := make(map[Rating]Outcome, len(Ratings))
	for _, r := range Ratings {
		out, _ := s.Schedule(card, r, now)
		result[r] = out
	}
	return result
}

// PreviewSchedule renders the interval each rating would produce as a short label.
// All four ratings are always present.
func (s *Scheduler) PreviewSchedule(card Card, now time.Time) map[Rating]string {
	if now.IsZero() {
		now = s.now()
	}
	labels := make(map[Rating]string, len(Ratings))
	for r, out := range s.Preview(card, now) {
		labels[r] = s.formatter.Format(out.Due.Sub(now))
	}
	return labels
}

func (s *Scheduler) fromNew(c *Card, r Rating) time.Duration {
	c.Stability = s.algo.initStability(r)
	c.Difficulty = s.algo.initDifficulty(r)
	if r == Again {
		c.State = Learning
		return shortStep(c)
	}
	c.State = Review
	return longStep(c)
}

// fromLearning handles both Learning and Relearning; Again keeps the current state.
func (s *Scheduler) fromLearning(c *Card, r Rating) time.Duration {
	stability := clampS(c.Stability)
	difficulty := clampD(c.Difficulty)
	c.Difficulty = s.algo.nextDifficulty(difficulty, r)
	if r == Again {
		c.Stability = clampS(stability * learningShrink)
		return shortStep(c)
	}
	rv := s.algo.retrievability(c.ElapsedDays, stability)
	c.Stability = s.algo.nextRecallStability(difficulty, stability, rv, r)
	c.State = Review
	return longStep(c)
}

func (s *Scheduler) fromReview(c *Card, r Rating) time.Duration {
	stability := clampS(c.Stability)
	difficulty := clampD(c.Difficulty)
	c.Difficulty = s.algo.nextDifficulty(difficulty, r)
	if r == Again {
		c.Stability = clampS(stability * lapseShrink)
		c.Lapses++
		c.State = Relearning
		return shortStep(c)
	}
	rv := s.algo.retrievability(c.ElapsedDays, stability)
	c.Stability = s.algo.nextRecallStability(difficulty, stability, rv, r)
	return longStep(c)
}

func shortStep(c *Card) time.Duration {
	c.ScheduledDays = 0
	return shortStepMinutes * time.Minute
}

func longStep(c *Card) time.Duration {
	c.ScheduledDays = reviewDays(c.Stability)
	return time.Duration(c.ScheduledDays) * 24 * time.Hour
}

func elapsedDays(lastReview *time.Time, now time.Time) float64 {
	if lastReview == nil {
		return 0
	}
	d := now.Sub(*lastReview).Hours() / 24
	if d < 0 {
		return 0
	}
	return d
}
