package entities

import "time"

// Event represents a bookable event created by an organizer.
//
// BookingCount always reflects the persisted number of bookings; Bookings is
// populated on single-event reads only.
type Event struct {
	ID              string
	Title           string
	Description     string
	Location        string
	Date            time.Time
	Image           string // opaque path into the upload store, may be empty
	Status          string
	MaxParticipants int
	OrganizerID     string
	Organizer       UserRef
	Bookings        []Booking
	BookingCount    int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsFull reports whether the event has reached its capacity ceiling.
func (e *Event) IsFull() bool {
	return e.BookingCount >= e.MaxParticipants
}

// Remaining returns the number of open seats.
func (e *Event) Remaining() int {
	return e.MaxParticipants - e.BookingCount
}

// BookingFor returns the booking held by participantID, or nil.
func (e *Event) BookingFor(participantID string) *Booking {
	for i := range e.Bookings {
		if e.Bookings[i].ParticipantID == participantID {
			return &e.Bookings[i]
		}
	}
	return nil
}

// EventPatch carries the mutable event fields for a conditional update.
// Nil fields are left untouched.
type EventPatch struct {
	Title           *string
	Description     *string
	Location        *string
	Date            *time.Time
	Image           *string
	MaxParticipants *int
}
