package services

import "errors"

var (
	ErrConferenceNotFound  = errors.New("conference not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrUnsupportedEvent    = errors.New("unsupported event type")
)
