package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/repository"
	"github.com/spec-kit/account-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborator requirements for the service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Logger   *zap.Logger
	Clock    clockwork.Clock
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), deps.Clock),
		bcryptCost: cfg.Auth.BcryptCost,
		logger:     deps.Logger,
	}
}

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	PasswordCheck string
}

// Login authenticates by email and password and returns a signed session
// token. An unknown email and a wrong password fail identically so the two
// cases cannot be told apart from outside.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, util.ErrAuthenticationFail
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return "", time.Time{}, util.WrapServerError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, util.ErrAuthenticationFail
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Email, auth.TierFor(user.IsAdmin))
	if err != nil {
		s.logger.Error("token issue failed", zap.Error(err))
		return "", time.Time{}, util.WrapServerError(err)
	}
	return token, exp, nil
}

// Register creates a new account and returns its first session token. The
// password confirmation is checked before any repository access; the
// uniqueness check follows, and only then is the record written.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (string, time.Time, error) {
	if input.Password != input.PasswordCheck {
		return "", time.Time{}, util.ErrPasswordMismatched
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return "", time.Time{}, util.ErrDuplicatedEmail
	} else if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("user lookup failed", zap.Error(err))
		return "", time.Time{}, util.WrapServerError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return "", time.Time{}, util.WrapServerError(err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("user create failed", zap.Error(err))
		return "", time.Time{}, util.WrapServerError(err)
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Email, auth.TierAuthenticated)
	if err != nil {
		s.logger.Error("token issue failed", zap.Error(err))
		return "", time.Time{}, util.WrapServerError(err)
	}
	return token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
