// Package auth issues demo sessions. There is no user store and no signature: tokens are
// opaque strings that only identify when they were minted.
package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned when the email or password is missing.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is the identity attached to a session.
type User struct {
	ID     string
	Email  string
	Name   string
	Avatar string
}

// Session is the result of a successful sign-in.
type Session struct {
	User  User
	Token string
}

// Authenticator signs users in.
type Authenticator interface {
	// Login accepts any non-empty email and password pair.
	Login(ctx context.Context, email, password string) (*Session, error)
	// GoogleLogin simulates a completed Google sign-in for a fixed account.
	GoogleLogin(ctx context.Context) (*Session, error)
}
