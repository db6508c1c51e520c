package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (AuthPayload, error)
	// Register creates the account and logs it in immediately.
	Register(ctx context.Context, req RegisterRequest) (AuthPayload, error)
}
