package output

import (
	"context"

	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	SetApproved(ctx context.Context, id string, approved bool) (*entities.User, error)
}
