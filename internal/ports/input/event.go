package input

import (
	"context"
	"time"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
)

// CreateEventInput is the validated payload for creating an event.
type CreateEventInput struct {
	Title           string    `validate:"required"`
	Description     string    `validate:"required"`
	Location        string    `validate:"required"`
	Date            time.Time `validate:"required"`
	Image           string
	MaxParticipants int `validate:"required,min=1"`
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, caller domain.Principal, in CreateEventInput) (*entities.Event, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	ListPublished(ctx context.Context) ([]entities.Event, error)
	ListMine(ctx context.Context, caller domain.Principal) ([]entities.Event, error)
	UpdateEvent(ctx context.Context, caller domain.Principal, id string, patch entities.EventPatch) (*entities.Event, error)
	DeleteEvent(ctx context.Context, caller domain.Principal, id string) (*entities.Event, error)
	SetEventStatus(ctx context.Context, caller domain.Principal, id, status string) (*entities.Event, error)
}
