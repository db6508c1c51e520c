package auth

import (
	"context"
	"testing"
	"time"

	"github.com/empdash/empdash-backend-go/internal/domain/auth"
	"github.com/empdash/empdash-backend-go/internal/domain/user"
	"github.com/empdash/empdash-backend-go/internal/pkg/jwt"
	"github.com/empdash/empdash-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()
	userRepo, err := memory.NewSeededUserRepository(memory.SeedUsers())
	require.NoError(t, err)
	jwtService := jwt.NewJWTService(testSecret, 24*time.Hour)
	return NewAuthService(userRepo, jwtService), jwtService
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	service, jwtService := newTestService(t)

	payload, err := service.Login(ctx, auth.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.NotEmpty(t, payload.Token)
	assert.Equal(t, "admin", payload.User.Username)
	assert.Equal(t, user.RoleAdmin, payload.User.Role)

	// the issued token decodes back to the same identity
	identity, err := jwtService.VerifyToken(ctx, payload.Token)
	require.NoError(t, err)
	assert.Equal(t, payload.User.ID, identity.ID)
	assert.Equal(t, user.RoleAdmin, identity.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	_, err := service.Login(ctx, auth.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsernameSameError(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	_, err := service.Login(ctx, auth.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Register_LogsInImmediately(t *testing.T) {
	ctx := context.Background()
	service, jwtService := newTestService(t)

	payload, err := service.Register(ctx, auth.RegisterRequest{
		Username: "newbie",
		Password: "secret1",
		Role:     user.RoleEmployee,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, payload.Token)
	assert.Equal(t, "newbie", payload.User.Username)
	assert.Equal(t, user.RoleEmployee, payload.User.Role)

	identity, err := jwtService.VerifyToken(ctx, payload.Token)
	require.NoError(t, err)
	assert.Equal(t, "newbie", identity.Username)

	// the account can log in with its password afterwards
	again, err := service.Login(ctx, auth.LoginRequest{Username: "newbie", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, payload.User, again.User)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	_, err := service.Register(ctx, auth.RegisterRequest{
		Username: "admin",
		Password: "secret1",
		Role:     user.RoleAdmin,
	})
	assert.ErrorIs(t, err, user.ErrDuplicateUsername)
}
