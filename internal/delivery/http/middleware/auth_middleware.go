// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"grocer/internal/delivery/http/response"
	"grocer/internal/domain/entity"
	"grocer/internal/domain/repository"
	"grocer/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyCurrentUser is the echo.Context key holding the authenticated account.
const KeyCurrentUser = "currentUser"

// AuthMiddleware provides middleware for bearer token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and loads the account behind it.
// The account is re-read from the store on every request, so a deleted user
// loses access immediately even with a live token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Account no longer exists")
		}

		c.Set(KeyCurrentUser, user)

		return next(c)
	}
}

// RequireAdmin rejects requests from non-admin accounts.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: account information missing")
		}

		if !user.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: admin access required")
		}

		return next(c)
	}
}

// CurrentUser returns the authenticated account set by Authenticate, or nil.
func CurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(KeyCurrentUser).(*entity.User); ok {
		return user
	}

	return nil
}
