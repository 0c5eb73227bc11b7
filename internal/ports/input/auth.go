package input

import (
	"context"
	"time"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
)

// RegisterInput is the validated payload for account creation. Admin
// accounts are provisioned out of band, never through registration.
type RegisterInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
	Role      string `validate:"omitempty,oneof=ORGANIZER PARTICIPANT"`
}

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginResult carries the issued token alongside the authenticated user.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entities.User
}

type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*entities.User, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	ApproveOrganizer(ctx context.Context, caller domain.Principal, userID string) (*entities.User, error)
}
