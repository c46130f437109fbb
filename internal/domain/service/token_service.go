package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"grocer/internal/domain/entity"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Tokens are self-contained: verification needs only the signature and expiry,
// no server-side session state. Revocation is deliberately unsupported; expiry
// is the only termination mechanism.
type TokenService interface {
	// Issue creates a signed token embedding the identity triple with a fixed
	// lifetime from issuance.
	Issue(userID uuid.UUID, email string, role entity.Role) (string, error)

	// Verify checks signature and expiry. It returns
	// domainerrors.ErrTokenExpired for an expired token and
	// domainerrors.ErrTokenInvalid for a bad signature or missing fields.
	Verify(tokenString string) (*Claims, error)
}
