package srs

import "time"

// Card is the scheduling state of one reviewable item.
type Card struct {
	Stability     float64    `json:"stability"`
	Difficulty    float64    `json:"difficulty"`
	ElapsedDays   float64    `json:"elapsed_days"`
	ScheduledDays int        `json:"scheduled_days"`
	Reps          int        `json:"reps"`
	Lapses        int        `json:"lapses"`
	State         State      `json:"state"`
	LastReview    *time.Time `json:"last_review"`
}

// NewCard returns an unreviewed card. Stability and difficulty stay zero until the first review.
func NewCard() Card {
	return Card{State: New}
}

func (c Card) clone() Card {
	out := c
	if c.LastReview != nil {
		v := *c.LastReview
		out.LastReview = &v
	}
	return out
}

// Outcome is the result of scheduling one review.
type Outcome struct {
	Card     Card          `json:"card"`
	Due      time.Time     `json:"due"`
	Interval time.Duration `json:"interval"`
}
