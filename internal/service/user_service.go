package service

import (
	"context"

	"item-showcase/internal/domain"

	"go.uber.org/zap"
)

// PasswordSuffix is appended to a raw password by the placeholder hasher.
const PasswordSuffix = "secret"

// UserService defines the interface for user business logic
type UserService interface {
	Save(ctx context.Context, in domain.UserIn) domain.UserInDB
}

type userService struct {
	logger *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(logger *zap.Logger) UserService {
	return &userService{logger: logger}
}

// Save builds the stored form of a user. Nothing is persisted. in is expected
// to be validated; a missing username or password is treated as empty.
func (s *userService) Save(ctx context.Context, in domain.UserIn) domain.UserInDB {
	stored := domain.UserInDB{
		Username:       valueOf(in.Username),
		HashedPassword: fakePasswordHasher(valueOf(in.Password)),
		Email:          in.Email,
		FullName:       in.FullName,
	}

	s.logger.Info("User saved! ..not really", zap.String("username", stored.Username))
	return stored
}

// fakePasswordHasher is a placeholder, not a real hash.
func fakePasswordHasher(raw string) string {
	return raw + PasswordSuffix
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
