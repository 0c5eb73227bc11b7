package entities

import "time"

// Booking is a participant's reservation on an event. It has no lifecycle of
// its own: it is created by the book operation and removed with its event.
type Booking struct {
	EventID       string
	ParticipantID string
	Participant   UserRef
	Status        string
	JoinedAt      time.Time
}
