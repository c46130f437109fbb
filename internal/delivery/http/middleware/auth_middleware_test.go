package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grocer/config"
	"grocer/internal/domain/entity"
	"grocer/internal/domain/repository"
	"grocer/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user

	return nil
}

func (r *stubUserRepo) List(_ context.Context, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}

	return out, nil
}

type authFixture struct {
	middleware *AuthMiddleware
	repo       *stubUserRepo
	tokenFor   func(t *testing.T, user *entity.User) string
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenSecret: "integration-test-secret",
			TokenTTL:    time.Hour,
		},
	}
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	repo := &stubUserRepo{users: map[uuid.UUID]*entity.User{}}

	return &authFixture{
		middleware: NewAuthMiddleware(tokenSvc, repo),
		repo:       repo,
		tokenFor: func(t *testing.T, user *entity.User) string {
			t.Helper()
			token, err := tokenSvc.Issue(user.ID, user.Email, user.Role)
			require.NoError(t, err)

			return token
		},
	}
}

func (f *authFixture) addUser(role entity.Role) *entity.User {
	user := &entity.User{
		ID:    uuid.New(),
		Email: string(role) + "@example.com",
		Role:  role,
	}
	f.repo.users[user.ID] = user

	return user
}

func performRequest(mw echo.MiddlewareFunc, token string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)

	return rec
}

func (f *authFixture) guard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return f.middleware.Authenticate(f.middleware.RequireAdmin(next))
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	f := newAuthFixture(t)

	rec := performRequest(f.guard(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	f := newAuthFixture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Token abcdef")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := f.middleware.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	f := newAuthFixture(t)

	rec := performRequest(f.guard(), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_DeletedAccount(t *testing.T) {
	f := newAuthFixture(t)

	user := f.addUser(entity.RoleAdmin)
	token := f.tokenFor(t, user)

	// The token is still valid, but the account is gone.
	delete(f.repo.users, user.ID)

	rec := performRequest(f.guard(), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_CustomerBlockedFromAdmin(t *testing.T) {
	f := newAuthFixture(t)

	customer := f.addUser(entity.RoleCustomer)
	token := f.tokenFor(t, customer)

	rec := performRequest(f.guard(), token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_AdminAllowed(t *testing.T) {
	f := newAuthFixture(t)

	admin := f.addUser(entity.RoleAdmin)
	token := f.tokenFor(t, admin)

	rec := performRequest(f.guard(), token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_SetsCurrentUser(t *testing.T) {
	f := newAuthFixture(t)

	customer := f.addUser(entity.RoleCustomer)
	token := f.tokenFor(t, customer)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.User
	handler := f.middleware.Authenticate(func(c echo.Context) error {
		seen = CurrentUser(c)

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	require.NotNil(t, seen)
	assert.Equal(t, customer.ID, seen.ID)
	assert.False(t, seen.IsAdmin())
}
