package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Ensure Adapter implements AuthAdapter
var _ driven.AuthAdapter = (*Adapter)(nil)

// jwtClaims wraps the caller claims for JWT compatibility
type jwtClaims struct {
	UserID          string   `json:"user_id"`
	AgencyCode      string   `json:"agency_code"`
	ParticipantID   string   `json:"participant_id"`
	ApplicationCode string   `json:"application_code"`
	Roles           []string `json:"roles"`
	jwt.RegisteredClaims
}

// Adapter validates JWTs issued by the identity provider. This service only
// verifies tokens, it never mints them.
type Adapter struct {
	jwtSecret []byte
}

// NewAdapter creates a new auth adapter with the given JWT secret
func NewAdapter(jwtSecret string) *Adapter {
	return &Adapter{jwtSecret: []byte(jwtSecret)}
}

// ValidateToken verifies a JWT and extracts the caller's context
func (a *Adapter) ValidateToken(tokenString string) (*domain.AuthContext, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.AuthContext{
		UserID:          claims.UserID,
		AgencyCode:      claims.AgencyCode,
		ParticipantID:   claims.ParticipantID,
		ApplicationCode: claims.ApplicationCode,
		Roles:           claims.Roles,
	}, nil
}
