package driven

import "github.com/openjudiciary/casedocs-core/internal/core/domain"

// AuthAdapter validates externally issued access tokens. Token issuance is
// owned by the identity provider, not this service.
type AuthAdapter interface {
	// ValidateToken verifies a token's signature and expiry and extracts
	// the caller's context from its claims.
	ValidateToken(token string) (*domain.AuthContext, error)
}
