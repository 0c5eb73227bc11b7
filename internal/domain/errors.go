package domain

import "errors"

// Error is a domain error carrying a stable machine-readable code.
// The code is what adapters key on for HTTP status and i18n lookups;
// the message is a developer-facing default.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable error code.
func (e *Error) Code() string { return e.code }

// Domain errors.
var (
	ErrEventNotFound = &Error{code: "event_not_found", msg: "event not found"}

	// ErrNotFoundOrUnauthorized is the combined signal for ownership-scoped
	// operations. It deliberately does not reveal whether the event exists
	// but belongs to someone else.
	ErrNotFoundOrUnauthorized = &Error{code: "not_found_or_unauthorized", msg: "event not found or you are not authorized"}

	ErrUnauthenticated = &Error{code: "unauthenticated", msg: "authentication required"}
	ErrUnauthorized    = &Error{code: "unauthorized", msg: "you are not allowed to perform this action"}

	ErrAlreadyBooked = &Error{code: "already_booked", msg: "you have already booked this event"}
	ErrEventFull     = &Error{code: "event_full", msg: "event is fully booked"}

	// ErrBookingFailed covers an atomic append rejected for a reason not
	// attributable to fullness (a race lost against a concurrent identical
	// booking).
	ErrBookingFailed = &Error{code: "booking_failed", msg: "booking failed"}

	// ErrBookingConditionFailed is the store-level signal that the
	// conditional append was rejected at write time. The booking engine
	// re-reads and maps it to ErrEventFull or ErrBookingFailed; it never
	// reaches callers.
	ErrBookingConditionFailed = &Error{code: "booking_condition_failed", msg: "booking condition failed at write time"}

	ErrParticipantNotFound = &Error{code: "participant_not_found", msg: "participant has no booking on this event"}
	ErrBookingNotConfirmed = &Error{code: "booking_not_confirmed", msg: "booking is not confirmed"}
	ErrUserNotFound        = &Error{code: "user_not_found", msg: "user not found"}
	ErrEmailTaken          = &Error{code: "email_taken", msg: "this email is already registered"}
	ErrInvalidCredentials  = &Error{code: "invalid_credentials", msg: "email or password is incorrect"}
)

// ValidationError reports malformed input, field by field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

func (e *ValidationError) Code() string { return "validation" }

type coder interface{ Code() string }

// Code extracts the stable code from err, unwrapping as needed.
// Returns "" when err carries no domain code.
func Code(err error) string {
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}
