package domain

// Event statuses.
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusCanceled  = "CANCELED"
)

// Booking statuses. A booking starts PENDING and is confirmed or refused by
// the event's organizer.
const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingRefused   = "REFUSED"
)

// User roles.
const (
	RoleAdmin       = "ADMIN"
	RoleOrganizer   = "ORGANIZER"
	RoleParticipant = "PARTICIPANT"
)

// ValidEventStatus reports whether s is a known event status.
func ValidEventStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusCanceled
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	return s == BookingPending || s == BookingConfirmed || s == BookingRefused
}
