package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
	"github.com/MostafaRhazlani/EventFlow/internal/ports/input"
	"github.com/MostafaRhazlani/EventFlow/internal/ports/output"
)

var _ input.AuthUseCase = (*AuthService)(nil)

// AuthService implements registration, login and organizer approval. It is
// the boundary behind which the rest of the system only ever sees a
// Principal.
type AuthService struct {
	userRepo output.UserRepository
	tokens   output.TokenManager
	validate *validator.Validate
	newID    func() string
	now      func() time.Time
}

func NewAuthService(userRepo output.UserRepository, tokens output.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validator.New(),
		newID:    func() string { return uuid.New().String() },
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, in input.RegisterInput) (*entities.User, error) {
	if err := checkStruct(s.validate, in); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	role := in.Role
	if role == "" {
		role = domain.RoleParticipant
	}
	user := &entities.User{
		ID:           s.newID(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, in input.LoginInput) (*input.LoginResult, error) {
	if err := checkStruct(s.validate, in); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &input.LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// ApproveOrganizer flips the approval flag that gates event creation for an
// organizer account.
func (s *AuthService) ApproveOrganizer(ctx context.Context, caller domain.Principal, userID string) (*entities.User, error) {
	if caller.Role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorized
	}
	return s.userRepo.SetApproved(ctx, userID, true)
}
