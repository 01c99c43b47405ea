package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/pkg/util"
)

const claimsKey = "auth_claims"

const bearerPrefix = "Bearer "

// Middleware gates requests on a verified bearer token. The gate itself does
// no I/O; verification is pure in-memory signature and expiry checking.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the gate.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate extracts and verifies the Authorization bearer token and
// attaches the decoded claims to the request context. A missing header, a
// missing "Bearer " prefix and a failed verification all reject alike.
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return util.ErrUnauthenticated
	}

	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found {
		return util.ErrUnauthenticated
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		return util.ErrUnauthenticated
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// RequireTier enforces a minimum permission tier. It expects Authenticate to
// have run first; the boundary is inclusive, a claim at exactly min passes.
func RequireTier(min Tier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return util.ErrUnauthenticated
		}
		if claims.Permission < min {
			return util.ErrPermissionDenied
		}
		return c.Next()
	}
}

// ClaimsFromContext retrieves the claims attached by Authenticate.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
