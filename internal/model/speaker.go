package model

type ContextKey string

const (
	SpeakerIDKey ContextKey = "speakerID"
)
