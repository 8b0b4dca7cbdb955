package auth

import "errors"

// Common authentication errors.
var (
	// ErrInvalidToken is returned when a token is malformed, has an
	// invalid signature, or fails validation for any non-expiry reason.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry time has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrInvalidCredentials is returned when an email/password pair does
	// not match a stored user. Deliberately indistinguishable between
	// "no such user" and "wrong password".
	ErrInvalidCredentials = errors.New("invalid credentials")
)
