package domain

// AuthContext identifies the caller of a document operation. It is passed
// explicitly into every strategy call rather than threaded through
// construction, so the dependency is visible in the signature.
type AuthContext struct {
	UserID          string   `json:"user_id"`
	AgencyCode      string   `json:"agency_code"`
	ParticipantID   string   `json:"participant_id"`
	ApplicationCode string   `json:"application_code"`
	Roles           []string `json:"roles"`
}

// HasRole checks whether the caller carries the named role.
func (a *AuthContext) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenClaims is the JWT payload the auth adapter validates.
type TokenClaims struct {
	UserID          string   `json:"user_id"`
	AgencyCode      string   `json:"agency_code"`
	ParticipantID   string   `json:"participant_id"`
	ApplicationCode string   `json:"application_code"`
	Roles           []string `json:"roles"`
	IssuedAt        int64    `json:"iat"`
	ExpiresAt       int64    `json:"exp"`
}
