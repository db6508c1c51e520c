package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/empdash/empdash-backend-go/internal/domain/auth"
	"github.com/empdash/empdash-backend-go/internal/domain/user"
	"github.com/empdash/empdash-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepository user.UserRepository
	jwtService     jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService. An unknown username and a wrong
// password surface as the same error, so callers cannot enumerate accounts.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthPayload, error) {
	userData, err := a.userRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthPayload{}, auth.ErrInvalidCredentials
		}
		return auth.AuthPayload{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthPayload{}, auth.ErrInvalidCredentials
	}

	return a.issuePayload(userData)
}

// Register implements auth.AuthService. A created account is logged in
// immediately and gets the same payload shape as Login.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthPayload, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthPayload{}, fmt.Errorf("failed to hash password: %w", err)
	}

	userData, err := a.userRepository.Create(ctx, req.Username, string(hash), req.Role)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			return auth.AuthPayload{}, err
		}
		return auth.AuthPayload{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.issuePayload(userData)
}

func (a *AuthServiceImpl) issuePayload(userData user.User) (auth.AuthPayload, error) {
	token, _, err := a.jwtService.GenerateToken(auth.Identity{
		ID:       userData.ID,
		Username: userData.Username,
		Role:     userData.Role,
	})
	if err != nil {
		return auth.AuthPayload{}, fmt.Errorf("failed to create token: %w", err)
	}

	return auth.AuthPayload{
		Token: token,
		User:  userData.Public(),
	}, nil
}
