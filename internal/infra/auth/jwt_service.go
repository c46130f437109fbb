// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"grocer/config"
	"grocer/internal/domain/entity"
	domainerrors "grocer/internal/domain/errors"
	"grocer/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Process-wide signing secret, loaded once at startup.
	ttl    time.Duration // Token lifetime from issuance.
}

// jwtClaims is the wire representation of the token payload. The claim names
// are part of the public token format; renaming them breaks issued tokens.
type jwtClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It refuses to start without a signing secret: a known default would make
// every issued token forgeable.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.TokenSecret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &jwtService{
		secret: cfg.Auth.TokenSecret,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token embedding the identity triple,
// with an absolute expiry of issuance time plus the configured TTL.
func (s *jwtService) Issue(userID uuid.UUID, email string, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		UserID: userID.String(),
		Email:  email,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the signature and expiry of a token string and recovers the
// embedded identity. The expired case is reported distinctly from every other
// failure so callers can surface it separately.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	var claims jwtClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token past its expiry")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token")
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token signature rejected")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil || claims.Email == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("required claims missing")
	}

	return &service.Claims{
		UserID:           userID,
		Email:            claims.Email,
		Role:             entity.RoleFromString(claims.Role),
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
