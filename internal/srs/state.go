package srs

import (
	"encoding/json"
	"fmt"
)

// State is the learning stage of a card.
type State int

const (
	New        State = iota // never reviewed
	Learning                // short interval drilling
	Review                  // long interval retention
	Relearning              // recovering after a lapse
)

var (
	stateNames  = [...]string{New: "New", Learning: "Learning", Review: "Review", Relearning: "Relearning"}
	stateByName = map[string]State{
		"New":        New,
		"Learning":   Learning,
		"Review":     Review,
		"Relearning": Relearning,
	}
)

func (s State) IsValid() bool {
	return s >= New && s <= Relearning
}

func (s State) String() string {
	if s.IsValid() {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", errInvalidStateString, int(s))
	}
	return []byte(stateNames[s]), nil
}

func (s *State) UnmarshalText(text []byte) error {
	v, ok := stateByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", errInvalidStateString, text)
	}
	*s = v
	return nil
}

func (s State) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (s *State) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: %s", errInvalidStateString, data)
	}
	return s.UnmarshalText([]byte(str))
}
