package entity

import "errors"

// Domain errors shared across usecases. Handlers map these onto HTTP statuses.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("you do not have permission to access this resource")
	ErrQuotaExceeded    = errors.New("daily usage limit reached, please upgrade your plan")
	ErrGenerationFailed = errors.New("failed to generate action response")
	ErrEmailTaken       = errors.New("email already registered")
	ErrBadCredentials   = errors.New("invalid credentials")
)
