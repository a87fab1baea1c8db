package srs

import "errors"

var (
	ErrInvalidRating      = errors.New("srs: invalid rating")
	ErrInvalidWeights     = errors.New("srs: invalid weights")
	ErrUnsupportedLocale  = errors.New("srs: unsupported locale")
	errInvalidStateString = errors.New("srs: invalid state")
)
