package output

import (
	"time"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
)

// TokenManager issues and verifies the access tokens that carry a
// principal between requests.
type TokenManager interface {
	Issue(user *entities.User) (token string, expiresAt time.Time, err error)
	Verify(token string) (domain.Principal, error)
}
