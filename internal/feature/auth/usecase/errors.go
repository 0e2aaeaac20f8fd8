// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the email or password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidResetCode is returned when a password-reset code does not match
	// the one stored for the user, or no reset is in progress.
	ErrInvalidResetCode = errors.New("invalid verification code")

	// ErrResetCodeExpired is returned when a password-reset code has passed its expiry.
	ErrResetCodeExpired = errors.New("verification code expired")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionRevoked is returned when attempting to use a revoked session.
	ErrSessionRevoked = errors.New("session has been revoked")

	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session has expired")

	// ErrInvalidRefreshToken is returned when a refresh token is invalid or unknown.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
