package memory

import (
	"context"
	"testing"

	"github.com/empdash/empdash-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserRepository_SeededAccounts(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSeededUserRepository(SeedUsers())
	require.NoError(t, err)

	admin, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "1", admin.ID)
	assert.Equal(t, user.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	emp, err := repo.GetByUsername(ctx, "employee")
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, emp.Role)
}

func TestUserRepository_GetByUsernameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSeededUserRepository(SeedUsers())
	require.NoError(t, err)

	_, err = repo.GetByUsername(ctx, "Admin")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSeededUserRepository(SeedUsers())
	require.NoError(t, err)

	created, err := repo.Create(ctx, "newuser", "some-hash", user.RoleEmployee)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "1", created.ID)
	assert.NotEqual(t, "2", created.ID)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestUserRepository_CreateDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSeededUserRepository(SeedUsers())
	require.NoError(t, err)

	_, err = repo.Create(ctx, "admin", "some-hash", user.RoleAdmin)
	assert.ErrorIs(t, err, user.ErrDuplicateUsername)

	// duplicate check is case-sensitive: a differently-cased name is new
	_, err = repo.Create(ctx, "Admin", "some-hash", user.RoleAdmin)
	assert.NoError(t, err)
}

func TestUserRepository_GetByIDMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
