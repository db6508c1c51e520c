package graphql

import (
	"errors"

	"github.com/empdash/empdash-backend-go/internal/domain/auth"
	"github.com/empdash/empdash-backend-go/internal/domain/employee"
	"github.com/empdash/empdash-backend-go/internal/domain/user"
	"github.com/empdash/empdash-backend-go/internal/pkg/validator"
)

const (
	codeAuthenticationRequired = "AUTHENTICATION_REQUIRED"
	codeAuthorizationRequired  = "AUTHORIZATION_REQUIRED"
	codeInvalidCredentials     = "INVALID_CREDENTIALS"
	codeDuplicateUsername      = "DUPLICATE_USERNAME"
	codeNotFound               = "NOT_FOUND"
	codeInvalidToken           = "INVALID_TOKEN"
	codeBadUserInput           = "BAD_USER_INPUT"
	codeInternalError          = "INTERNAL_ERROR"
)

// opError carries a coarse machine-readable code into the GraphQL error
// extensions alongside the message.
type opError struct {
	err     error
	code    string
	details map[string]string
}

func (e *opError) Error() string { return e.err.Error() }

func (e *opError) Unwrap() error { return e.err }

func (e *opError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.code}
	if len(e.details) > 0 {
		ext["details"] = e.details
	}
	return ext
}

// wrapError maps domain errors to their operation failure codes.
func wrapError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return &opError{err: err, code: codeBadUserInput, details: validationErrs.ToMap()}
	}

	switch {
	case errors.Is(err, auth.ErrAuthenticationRequired):
		return &opError{err: err, code: codeAuthenticationRequired}
	case errors.Is(err, user.ErrAdminAccessRequired):
		return &opError{err: err, code: codeAuthorizationRequired}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &opError{err: err, code: codeInvalidCredentials}
	case errors.Is(err, user.ErrDuplicateUsername):
		return &opError{err: err, code: codeDuplicateUsername}
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return &opError{err: err, code: codeNotFound}
	case errors.Is(err, auth.ErrInvalidToken):
		return &opError{err: err, code: codeInvalidToken}
	default:
		return &opError{err: err, code: codeInternalError}
	}
}
