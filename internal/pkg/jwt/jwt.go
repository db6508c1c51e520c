package jwt

import (
	"context"
	"time"

	"github.com/empdash/empdash-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateToken signs a token asserting the identity, expiring after the
	// configured duration.
	GenerateToken(identity auth.Identity) (token string, expiresAt int64, err error)
	// VerifyToken decodes and verifies a token. Malformed, expired, and
	// forged tokens all fail with auth.ErrInvalidToken. There is no
	// revocation: a token stays valid until natural expiry.
	VerifyToken(ctx context.Context, tokenString string) (auth.Identity, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey  string
	expiration time.Duration
	tokenAuth  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expiration time.Duration) Service {
	return &JWTService{
		secretKey:  secretKey,
		expiration: expiration,
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(identity auth.Identity) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.expiration).Unix()

	claims := map[string]interface{}{
		"user_id":  identity.ID,
		"username": identity.Username,
		"role":     string(identity.Role),
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) VerifyToken(ctx context.Context, tokenString string) (auth.Identity, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	return auth.IdentityFromClaims(claims)
}
