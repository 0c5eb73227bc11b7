package input

import (
	"context"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
)

type BookingUseCase interface {
	// Book reserves a seat on the event for the caller. First writer to
	// satisfy the store's atomic condition wins; losers get
	// domain.ErrEventFull or domain.ErrBookingFailed.
	Book(ctx context.Context, caller domain.Principal, eventID string) (*entities.Event, error)
	SetBookingStatus(ctx context.Context, caller domain.Principal, eventID, participantID, status string) (*entities.Event, error)
	// Ticket returns the issuance read model for the caller's CONFIRMED
	// booking on the event.
	Ticket(ctx context.Context, caller domain.Principal, eventID string) (*entities.Ticket, error)
}
