package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOnboardingNotFound = errors.New("onboarding not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrForbidden          = errors.New("forbidden")
	ErrDatabaseError      = errors.New("database error")
)

// UpstreamError carries the status code and detail of a failed call to an
// external service so handlers can pass both through to the caller.
type UpstreamError struct {
	Service    string
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Service, e.StatusCode, e.Detail)
}
