package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

// TokenManager issues and verifies HS256-signed session tokens. The secret
// is fixed at construction and shared by every request for the process
// lifetime; tokens are stateless and simply expire, there is no revocation.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration, clock clockwork.Clock) *TokenManager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, clock: clock}
}

// Claims describes the token payload. Decoded claims are immutable and
// reconstructed fresh from the token on every request.
type Claims struct {
	UserID     int    `json:"user_id"`
	Email      string `json:"email"`
	Permission Tier   `json:"permission"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for the given identity and tier.
func (tm *TokenManager) Issue(userID int, email string, tier Tier) (string, time.Time, error) {
	now := tm.clock.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		UserID:     userID,
		Email:      email,
		Permission: tier,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature and expiry and returns the decoded claims.
// Malformed structure, signature mismatch and expiry all fail alike; the
// caller maps any failure to the unauthenticated taxonomy error. Expiry is
// strict, no leeway is granted.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.clock.Now))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
