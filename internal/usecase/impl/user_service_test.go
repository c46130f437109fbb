package impl

import (
	"context"
	"log/slog"
	"testing"

	"grocer/internal/domain/entity"
	domainerrors "grocer/internal/domain/errors"
	"grocer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest() (usecase.UserUsecase, *fakeUserRepo) {
	userRepo := &fakeUserRepo{}
	factory := &fakeFactory{userRepo: userRepo}

	svc := NewUserService(UserServiceParams{
		TxManager:    &fakeTxManager{factory: factory},
		UserRepo:     userRepo,
		Hasher:       fakeHasher{},
		TokenService: &fakeTokenService{},
		Logger:       slog.New(slog.DiscardHandler),
	})

	return svc, userRepo
}

func TestUserService_Register(t *testing.T) {
	svc, _ := newUserServiceForTest()
	ctx := context.Background()

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "Priya@Example.com",
		Name:     "Priya",
		Password: "pw123456",
		Phone:    "9876543210",
		Address:  "42 MG Road, Pune",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, "priya@example.com", out.User.Email)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
	assert.Equal(t, "hashed:pw123456", out.User.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newUserServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Email: "priya@example.com", Name: "Priya", Password: "pw123456",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, usecase.RegisterInput{
		Email: "PRIYA@example.com", Name: "Imposter", Password: "other-pw",
	})
	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Login(t *testing.T) {
	svc, _ := newUserServiceForTest()
	ctx := context.Background()

	registered, err := svc.Register(ctx, usecase.RegisterInput{
		Email: "priya@example.com", Name: "Priya", Password: "pw123456",
	})
	require.NoError(t, err)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "priya@example.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, registered.User.ID, out.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, _ := newUserServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Email: "priya@example.com", Name: "Priya", Password: "pw123456",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, usecase.LoginInput{Email: "priya@example.com", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailSameError(t *testing.T) {
	svc, _ := newUserServiceForTest()

	// An unknown email and a wrong password must be indistinguishable.
	_, err := svc.Login(context.Background(), usecase.LoginInput{
		Email: "nobody@example.com", Password: "pw123456",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetUser(t *testing.T) {
	svc, _ := newUserServiceForTest()
	ctx := context.Background()

	registered, err := svc.Register(ctx, usecase.RegisterInput{
		Email: "priya@example.com", Name: "Priya", Password: "pw123456",
	})
	require.NoError(t, err)

	user, err := svc.GetUser(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", user.Email)

	_, err = svc.GetUser(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	svc, _ := newUserServiceForTest()
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.Register(ctx, usecase.RegisterInput{Email: email, Name: "n", Password: "pw123456"})
		require.NoError(t, err)
	}

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	// Newest first.
	assert.Equal(t, "c@example.com", users[0].Email)
}
