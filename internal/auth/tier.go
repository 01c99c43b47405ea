package auth

// Tier is the ordered permission level carried by a session token.
// Comparisons are numeric: a gate requiring N accepts any tier >= N.
type Tier int

const (
	TierNone          Tier = 0
	TierAuthenticated Tier = 1
	TierAdmin         Tier = 2
)

// TierFor maps the stored admin flag to the tier encoded into tokens.
func TierFor(isAdmin bool) Tier {
	if isAdmin {
		return TierAdmin
	}
	return TierAuthenticated
}
