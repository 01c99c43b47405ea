package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/repository"
	"github.com/spec-kit/account-service/pkg/util"
)

// UserService exposes account read and update operations.
type UserService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// List returns all accounts ordered by id.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.logger.Error("user list failed", zap.Error(err))
		return nil, util.WrapServerError(err)
	}
	return users, nil
}

// Get returns a single account by id.
func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.ErrUserNotFound
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return nil, util.WrapServerError(err)
	}
	return user, nil
}

// Update applies a partial patch to an account and returns the result.
func (s *UserService) Update(ctx context.Context, id int, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.ErrUserNotFound
		}
		s.logger.Error("user update failed", zap.Error(err))
		return nil, util.WrapServerError(err)
	}
	return user, nil
}
