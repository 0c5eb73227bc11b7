package entities

import "time"

// Ticket is the read model handed to ticket issuance for a confirmed
// booking.
type Ticket struct {
	Event       Event
	Participant UserRef
	BookedAt    time.Time
}
