package output

import (
	"context"
	"time"

	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
)

// EventRepository is the durable event store. Conditional operations take an
// ownerScope: when non-empty, the write only matches rows whose organizer
// equals the scope, and a miss is reported as the combined
// domain.ErrNotFoundOrUnauthorized.
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	// FindOwned fetches an event scoped to its organizer. A missing event
	// and a wrong organizer are indistinguishable to the caller.
	FindOwned(ctx context.Context, id, organizerID string) (*entities.Event, error)
	FindByStatus(ctx context.Context, status string) ([]entities.Event, error)
	FindByOrganizerID(ctx context.Context, organizerID string) ([]entities.Event, error)
	Update(ctx context.Context, id, ownerScope string, patch entities.EventPatch) (*entities.Event, error)
	UpdateStatus(ctx context.Context, id, ownerScope, status string) (*entities.Event, error)
	Delete(ctx context.Context, id, ownerScope string) (*entities.Event, error)

	// AppendBooking atomically adds a PENDING booking if, at write time, the
	// event is below capacity and the participant holds no booking. Both
	// checks and the insert are a single atomic unit against the store;
	// rejection surfaces as domain.ErrBookingConditionFailed.
	AppendBooking(ctx context.Context, eventID, participantID string, joinedAt time.Time) error
	UpdateBookingStatus(ctx context.Context, eventID, participantID, status string) error
}
