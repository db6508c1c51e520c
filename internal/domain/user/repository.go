package user

import "context"

type UserRepository interface {
	// GetByUsername matches the username exactly, case-sensitively.
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, username string, passwordHash string, role Role) (User, error)
}
