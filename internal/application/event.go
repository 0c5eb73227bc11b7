package application

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
	"github.com/MostafaRhazlani/EventFlow/internal/ports/input"
	"github.com/MostafaRhazlani/EventFlow/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

// EventService implements the event-level use cases. Mutations by an
// ORGANIZER are ownership-scoped at the store; ADMIN bypasses scoping.
type EventService struct {
	eventRepo output.EventRepository
	validate  *validator.Validate
	newID     func() string
	now       func() time.Time
}

func NewEventService(eventRepo output.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		validate:  validator.New(),
		newID:     func() string { return uuid.New().String() },
		now:       time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, caller domain.Principal, in input.CreateEventInput) (*entities.Event, error) {
	if !domain.CanPerform(caller, nil, domain.ActionCreate) {
		return nil, domain.ErrUnauthorized
	}
	if err := checkStruct(s.validate, in); err != nil {
		return nil, err
	}
	event := &entities.Event{
		ID:              s.newID(),
		Title:           in.Title,
		Description:     in.Description,
		Location:        in.Location,
		Date:            in.Date,
		Image:           in.Image,
		Status:          domain.StatusDraft,
		MaxParticipants: in.MaxParticipants,
		OrganizerID:     caller.ID,
		CreatedAt:       s.now(),
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

// ListPublished returns the events visible to general discovery.
func (s *EventService) ListPublished(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.FindByStatus(ctx, domain.StatusPublished)
}

// ListMine returns the caller's own events, unfiltered by status.
func (s *EventService) ListMine(ctx context.Context, caller domain.Principal) ([]entities.Event, error) {
	if caller.Role != domain.RoleOrganizer && caller.Role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorized
	}
	return s.eventRepo.FindByOrganizerID(ctx, caller.ID)
}

func (s *EventService) UpdateEvent(ctx context.Context, caller domain.Principal, id string, patch entities.EventPatch) (*entities.Event, error) {
	scope, err := ownerScope(caller)
	if err != nil {
		return nil, err
	}
	if patch.MaxParticipants != nil && *patch.MaxParticipants < 1 {
		return nil, &domain.ValidationError{Fields: map[string]string{"MaxParticipants": "min"}}
	}
	return s.eventRepo.Update(ctx, id, scope, patch)
}

func (s *EventService) DeleteEvent(ctx context.Context, caller domain.Principal, id string) (*entities.Event, error) {
	scope, err := ownerScope(caller)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.Delete(ctx, id, scope)
}

func (s *EventService) SetEventStatus(ctx context.Context, caller domain.Principal, id, status string) (*entities.Event, error) {
	scope, err := ownerScope(caller)
	if err != nil {
		return nil, err
	}
	if !domain.ValidEventStatus(status) {
		return nil, &domain.ValidationError{Fields: map[string]string{"Status": "oneof"}}
	}
	return s.eventRepo.UpdateStatus(ctx, id, scope, status)
}

// ownerScope translates the caller into the store-level ownership scope:
// ADMIN is unscoped, ORGANIZER is scoped to rows it owns, everyone else is
// denied outright.
func ownerScope(caller domain.Principal) (string, error) {
	switch caller.Role {
	case domain.RoleAdmin:
		return "", nil
	case domain.RoleOrganizer:
		return caller.ID, nil
	default:
		return "", domain.ErrUnauthorized
	}
}
