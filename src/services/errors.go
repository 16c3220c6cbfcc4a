package services

import "errors"

// Sentinel errors for explicit error handling
// These errors allow callers to distinguish between different failure modes
// using errors.Is() instead of string matching

var (
	// ErrInvalidCredentials indicates authentication failed. Unknown
	// username and wrong password both map here so the API never reveals
	// which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired indicates a well-formed session token past its expiry
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates a malformed, tampered or wrongly signed token
	ErrTokenInvalid = errors.New("invalid token")
)
