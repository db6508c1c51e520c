package auth

import (
	"github.com/empdash/empdash-backend-go/internal/domain/user"
	"github.com/empdash/empdash-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate only checks presence: anything beyond that must surface as
// ErrInvalidCredentials, so the caller cannot tell a malformed password
// from a wrong one.
func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterRequest struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	Role     user.Role `json:"role"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else {
		if len(r.Username) < 3 {
			errs = append(errs, validator.ValidationError{
				Field:   "username",
				Message: "username must be at least 3 characters long",
			})
		}
		if len(r.Username) > 50 {
			errs = append(errs, validator.ValidationError{
				Field:   "username",
				Message: "username must not exceed 50 characters",
			})
		}
		if !validator.IsValidUsername(r.Username) {
			errs = append(errs, validator.ValidationError{
				Field:   "username",
				Message: "username may only contain letters, numbers, dots, underscores, and hyphens",
			})
		}
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters long",
		})
	}

	if !user.ValidRole(string(r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be either ADMIN or EMPLOYEE",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AuthPayload is returned by both login and register: a fresh token plus the
// public view of the account.
type AuthPayload struct {
	Token string          `json:"token"`
	User  user.PublicUser `json:"user"`
}
