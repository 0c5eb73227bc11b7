package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
	"github.com/MostafaRhazlani/EventFlow/internal/ports/input"
	"github.com/MostafaRhazlani/EventFlow/internal/ports/output"
)

var _ input.BookingUseCase = (*BookingService)(nil)

// BookingService implements seat booking and booking-status management.
// All concurrency correctness is delegated to the store's atomic
// conditional append; the service never holds a lock across the check and
// the write.
type BookingService struct {
	eventRepo output.EventRepository
	now       func() time.Time
}

func NewBookingService(eventRepo output.EventRepository) *BookingService {
	return &BookingService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// Book reserves a seat for the caller.
//
// The pre-checks against the freshly read event are a fast path only: two
// concurrent callers can both pass them. The store's conditional append
// re-evaluates capacity and uniqueness at write time as one atomic unit,
// which is what actually prevents overselling. A rejected append is
// disambiguated by re-reading the event.
func (s *BookingService) Book(ctx context.Context, caller domain.Principal, eventID string) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !domain.CanPerform(caller, event, domain.ActionBook) {
		return nil, domain.ErrUnauthorized
	}
	if event.BookingFor(caller.ID) != nil {
		return nil, domain.ErrAlreadyBooked
	}
	if event.IsFull() {
		return nil, domain.ErrEventFull
	}

	err = s.eventRepo.AppendBooking(ctx, eventID, caller.ID, s.now())
	if err != nil {
		if !errors.Is(err, domain.ErrBookingConditionFailed) {
			return nil, fmt.Errorf("append booking: %w", err)
		}
		fresh, ferr := s.eventRepo.FindByID(ctx, eventID)
		if ferr != nil {
			return nil, ferr
		}
		if fresh.IsFull() {
			return nil, domain.ErrEventFull
		}
		return nil, domain.ErrBookingFailed
	}

	return s.eventRepo.FindByID(ctx, eventID)
}

// SetBookingStatus lets the event's organizer confirm or refuse a booking.
//
// No transition graph is enforced: any status may be set from any prior
// status. Restricting this (e.g. forbidding REFUSED to CONFIRMED) is a
// product decision that has not been made.
func (s *BookingService) SetBookingStatus(ctx context.Context, caller domain.Principal, eventID, participantID, status string) (*entities.Event, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, &domain.ValidationError{Fields: map[string]string{"Status": "oneof"}}
	}
	if caller.Role != domain.RoleOrganizer {
		return nil, domain.ErrUnauthorized
	}
	event, err := s.eventRepo.FindOwned(ctx, eventID, caller.ID)
	if err != nil {
		return nil, err
	}
	if !domain.CanPerform(caller, event, domain.ActionUpdateBookingStatus) {
		return nil, domain.ErrUnauthorized
	}
	if event.BookingFor(participantID) == nil {
		return nil, domain.ErrParticipantNotFound
	}
	if err := s.eventRepo.UpdateBookingStatus(ctx, eventID, participantID, status); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return s.eventRepo.FindByID(ctx, eventID)
}

// Ticket returns the issuance triple for the caller's confirmed booking.
func (s *BookingService) Ticket(ctx context.Context, caller domain.Principal, eventID string) (*entities.Ticket, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	booking := event.BookingFor(caller.ID)
	if booking == nil {
		return nil, domain.ErrParticipantNotFound
	}
	if booking.Status != domain.BookingConfirmed {
		return nil, domain.ErrBookingNotConfirmed
	}
	return &entities.Ticket{
		Event:       *event,
		Participant: booking.Participant,
		BookedAt:    booking.JoinedAt,
	}, nil
}
