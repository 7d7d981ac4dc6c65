package service

import (
	"errors"
	"fmt"
)

// Error kinds. Callers switch on these with errors.Is; the specific errors
// below wrap one kind each.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUpstream           = errors.New("upstream failure")
)

var (
	ErrMissingFields    = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrInvalidPhone     = fmt.Errorf("%w: phone must be exactly 10 digits", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password too short", ErrValidation)
	ErrPasswordTooLong  = fmt.Errorf("%w: password too long", ErrValidation)
	ErrUnknownPlan      = fmt.Errorf("%w: unknown plan", ErrValidation)
	ErrInvalidAmount    = fmt.Errorf("%w: invalid amount", ErrValidation)

	ErrEmailTaken = errors.New("email already registered")

	ErrUserNotFound  = fmt.Errorf("%w: user not found", ErrInvalidCredentials)
	ErrWrongPassword = fmt.Errorf("%w: wrong password", ErrInvalidCredentials)

	ErrNoPlan = errors.New("no plan selected")
)
