package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/empdash/empdash-backend-go/internal/domain/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the process-wide credential store. It is handed to the
// services that need it rather than accessed as a global, and guarded for
// preemptive request handling.
type UserRepository struct {
	mu         sync.RWMutex
	users      []user.User
	byUsername map[string]int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byUsername: make(map[string]int),
	}
}

// NewSeededUserRepository builds a store holding the given accounts, hashing
// their passwords at construction time.
func NewSeededUserRepository(seed []SeedUser) (*UserRepository, error) {
	repo := NewUserRepository()
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password for %q: %w", s.Username, err)
		}
		repo.byUsername[s.Username] = len(repo.users)
		repo.users = append(repo.users, user.User{
			ID:           s.ID,
			Username:     s.Username,
			PasswordHash: string(hash),
			Role:         user.Role(s.Role),
		})
	}
	return repo, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byUsername[username]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return r.users[idx], nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// Create adds an account. The duplicate check is a case-sensitive exact
// match on the username.
func (r *UserRepository) Create(ctx context.Context, username string, passwordHash string, role user.Role) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[username]; exists {
		return user.User{}, user.ErrDuplicateUsername
	}

	newUser := user.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	r.byUsername[username] = len(r.users)
	r.users = append(r.users, newUser)
	return newUser, nil
}
