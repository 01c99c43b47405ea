package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/pkg/util"
)

// mockUserRepo is an in-memory repository with per-method call counters.
type mockUserRepo struct {
	users  map[int]*domain.User
	nextID int

	findAllCalls    int
	getByIDCalls    int
	getByEmailCalls int
	createCalls     int
	updateCalls     int

	failWith error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int]*domain.User{}, nextID: 1}
}

func (m *mockUserRepo) add(user domain.User) *domain.User {
	if user.ID == 0 {
		user.ID = m.nextID
	}
	if user.ID >= m.nextID {
		m.nextID = user.ID + 1
	}
	stored := user
	m.users[stored.ID] = &stored
	return &stored
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	m.findAllCalls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	m.getByIDCalls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	user, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.getByEmailCalls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	m.createCalls++
	if m.failWith != nil {
		return m.failWith
	}
	created := m.add(*user)
	user.ID = created.ID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	m.updateCalls++
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func newTestAuthService(t *testing.T, repo *mockUserRepo) *AuthService {
	t.Helper()

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 720,
			BcryptCost:      bcrypt.MinCost,
		},
	}
	return NewAuthService(cfg, AuthDependencies{
		UserRepo: repo,
		Logger:   zap.NewNop(),
		Clock:    clockwork.NewFakeClock(),
	})
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func TestLoginSuccessEncodesIdentityAndTier(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(domain.User{ID: 1, Name: "Tester", Email: "t@e.com", PasswordHash: mustHash(t, "secret"), IsActive: true})

	svc := newTestAuthService(t, repo)

	token, _, err := svc.Login(context.Background(), "t@e.com", "secret")
	require.NoError(t, err)

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "t@e.com", claims.Email)
	assert.Equal(t, auth.TierAuthenticated, claims.Permission)
}

func TestLoginAdminGetsAdminTier(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(domain.User{ID: 2, Email: "root@e.com", PasswordHash: mustHash(t, "secret"), IsActive: true, IsAdmin: true})

	svc := newTestAuthService(t, repo)

	token, _, err := svc.Login(context.Background(), "root@e.com", "secret")
	require.NoError(t, err)

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, auth.TierAdmin, claims.Permission)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(domain.User{ID: 1, Email: "t@e.com", PasswordHash: mustHash(t, "secret"), IsActive: true})

	svc := newTestAuthService(t, repo)

	_, _, unknownErr := svc.Login(context.Background(), "nobody@e.com", "secret")
	_, _, wrongErr := svc.Login(context.Background(), "t@e.com", "wrong")

	assert.ErrorIs(t, unknownErr, util.ErrAuthenticationFail)
	assert.ErrorIs(t, wrongErr, util.ErrAuthenticationFail)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestLoginRepositoryFailureBecomesServerError(t *testing.T) {
	repo := newMockUserRepo()
	repo.failWith = errors.New("connection reset")

	svc := newTestAuthService(t, repo)

	_, _, err := svc.Login(context.Background(), "t@e.com", "secret")
	assert.ErrorIs(t, err, util.ErrServerError)
}

func TestRegisterPasswordMismatchSkipsRepository(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(t, repo)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Name:          "Tester",
		Email:         "t@e.com",
		Password:      "p1",
		PasswordCheck: "p2",
	})

	assert.ErrorIs(t, err, util.ErrPasswordMismatched)
	assert.Zero(t, repo.getByEmailCalls, "mismatch must be detected before any lookup")
	assert.Zero(t, repo.createCalls)
}

func TestRegisterDuplicateEmailSkipsCreate(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(domain.User{ID: 1, Email: "t@e.com", PasswordHash: "x", IsActive: true})

	svc := newTestAuthService(t, repo)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Name:          "Tester",
		Email:         "t@e.com",
		Password:      "secret",
		PasswordCheck: "secret",
	})

	assert.ErrorIs(t, err, util.ErrDuplicatedEmail)
	assert.Zero(t, repo.createCalls)
}

func TestRegisterCreatesActiveNonAdminUser(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(t, repo)

	token, _, err := svc.Register(context.Background(), RegisterInput{
		Name:          "Tester",
		Email:         "new@e.com",
		Password:      "secret",
		PasswordCheck: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, 1, repo.createCalls)

	created, err := repo.GetByEmail(context.Background(), "new@e.com")
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.False(t, created.IsAdmin)
	assert.NotEqual(t, "secret", created.PasswordHash)
	assert.NoError(t, auth.ComparePassword(created.PasswordHash, "secret"))

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, auth.TierAuthenticated, claims.Permission)
}

func TestRegisterRepositoryFailureBecomesServerError(t *testing.T) {
	repo := newMockUserRepo()
	repo.failWith = errors.New("unique constraint internals")

	svc := newTestAuthService(t, repo)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Name:          "Tester",
		Email:         "t@e.com",
		Password:      "secret",
		PasswordCheck: "secret",
	})
	assert.ErrorIs(t, err, util.ErrServerError)
}
