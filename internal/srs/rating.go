package srs

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Rating is the recall quality reported by the user.
type Rating int

const (
	Again Rating = iota + 1
	Hard
	Good
	Easy
)

// Ratings lists every valid rating in ascending order.
var Ratings = [...]Rating{Again, Hard, Good, Easy}

var (
	ratingNames  = [...]string{Again: "Again", Hard: "Hard", Good: "Good", Easy: "Easy"}
	ratingByName = map[string]Rating{
		"Again": Again,
		"Hard":  Hard,
		"Good":  Good,
		"Easy":  Easy,
	}
)

func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// MarshalJSON writes the numeric form so preview maps are keyed "1".."4".
func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}
	return []byte(strconv.Itoa(int(r))), nil
}

// UnmarshalJSON accepts either 1..4 or "Again".."Easy".
// Out of range numbers are kept as-is so callers can report a validation error.
func (r *Rating) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Rating(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRating, data)
	}
	v, ok := ratingByName[s]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidRating, s)
	}
	*r = v
	return nil
}
