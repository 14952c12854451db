package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/surhub/startup-weekend/internal/model"
	"github.com/surhub/startup-weekend/internal/repository"
	"github.com/surhub/startup-weekend/pkg/logger"
)

// IdentityService simulates the identity backend: credential checks against
// the seed accounts and registration that always succeeds.
type IdentityService struct {
	users repository.UserRepository

	latency time.Duration
}

func NewIdentityService() *IdentityService {
	return &IdentityService{}
}

// RegisterInput is the slice of the registration draft the identity backend
// consumes; the profile fields stay wizard-local.
type RegisterInput struct {
	Name  string
	Email string
}

func (s *IdentityService) Login(ctx context.Context, email, password string) (*model.Identity, *Error) {
	l := logger.FromContext(ctx)
	l.Debug("logging in", zap.String("email", email))

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, NewError(ErrorCodeUnspecified, "login interrupted")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		l.Warn("login for unknown email", zap.String("email", email))
		return nil, NewError(ErrorCodeInvalidCredentials, "invalid_credentials")
	}
	if err != nil {
		l.Error("failed to look up user", zap.String("email", email), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to look up user")
	}

	if len(user.PasswordHash) == 0 ||
		bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		l.Warn("login with wrong password", zap.String("email", email))
		return nil, NewError(ErrorCodeInvalidCredentials, "invalid_credentials")
	}

	l.Info("login succeeded", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))

	return toIdentity(user), nil
}

// Register always succeeds: it manufactures a standard-role identity from the
// draft's name and email. No uniqueness checking; the record lives only for
// the current process.
func (s *IdentityService) Register(ctx context.Context, input RegisterInput) (*model.Identity, *Error) {
	l := logger.FromContext(ctx)
	l.Debug("registering", zap.String("email", input.Email))

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, NewError(ErrorCodeUnspecified, "registration interrupted")
	}

	user := &repository.User{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Role:      model.RoleUser,
		Avatar:    "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		CreatedAt: time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		l.Error("failed to create user", zap.String("email", input.Email), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "registration_failed")
	}

	l.Info("registration succeeded", zap.String("user_id", user.ID))

	return toIdentity(user), nil
}

func (s *IdentityService) GetUser(ctx context.Context, userID string) (*model.Identity, *Error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, NewError(ErrorCodeUnspecified, "lookup interrupted")
	}

	user, err := s.users.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "not_found")
	}
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to look up user")
	}

	return toIdentity(user), nil
}

func (s *IdentityService) ListUsers(ctx context.Context) ([]*model.Identity, *Error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, NewError(ErrorCodeUnspecified, "listing interrupted")
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to list users")
	}

	identities := make([]*model.Identity, 0, len(users))
	for _, user := range users {
		identities = append(identities, toIdentity(user))
	}
	return identities, nil
}

// DeleteUser reports success without checking existence.
func (s *IdentityService) DeleteUser(ctx context.Context, userID string) *Error {
	l := logger.FromContext(ctx)
	l.Info("deleting user", zap.String("user_id", userID))

	if err := simulateLatency(ctx, s.latency); err != nil {
		return NewError(ErrorCodeUnspecified, "deletion interrupted")
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		l.Error("failed to delete user", zap.String("user_id", userID), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete user")
	}
	return nil
}

func (s *IdentityService) WithUserRepo(r repository.UserRepository) *IdentityService {
	s.users = r
	return s
}

func (s *IdentityService) WithLatency(d time.Duration) *IdentityService {
	s.latency = d
	return s
}

func toIdentity(user *repository.User) *model.Identity {
	createdAt := user.CreatedAt
	return &model.Identity{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		CreatedAt: &createdAt,
	}
}
