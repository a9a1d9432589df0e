package auth

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// DemoAvatarURL is the placeholder picture given to every demo user.
const DemoAvatarURL = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=40&h=40&fit=crop&crop=face&auto=format"

const (
	demoUserID      = "1"
	googleUserEmail = "johndoe@gmail.com"
	googleUserName  = "John Doe"

	loginTokenPrefix  = "mock_jwt_token_"
	googleTokenPrefix = "google_jwt_token_"
)

// DemoAuthenticator stands in for a real identity provider.
type DemoAuthenticator struct {
	now func() time.Time
}

// Option customizes a DemoAuthenticator.
type Option func(*DemoAuthenticator)

// WithClock replaces time.Now for token minting.
func WithClock(now func() time.Time) Option {
	return func(a *DemoAuthenticator) {
		a.now = now
	}
}

// NewDemoAuthenticator returns an authenticator that accepts any non-empty credentials.
func NewDemoAuthenticator(opts ...Option) *DemoAuthenticator {
	a := &DemoAuthenticator{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Login implements Authenticator. The display name is the local part of the email.
func (a *DemoAuthenticator) Login(_ context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	name, _, _ := strings.Cut(email, "@")
	return &Session{
		User: User{
			ID:     demoUserID,
			Email:  email,
			Name:   name,
			Avatar: DemoAvatarURL,
		},
		Token: a.token(loginTokenPrefix),
	}, nil
}

// GoogleLogin implements Authenticator.
func (a *DemoAuthenticator) GoogleLogin(_ context.Context) (*Session, error) {
	return &Session{
		User: User{
			ID:     demoUserID,
			Email:  googleUserEmail,
			Name:   googleUserName,
			Avatar: DemoAvatarURL,
		},
		Token: a.token(googleTokenPrefix),
	}, nil
}

func (a *DemoAuthenticator) token(prefix string) string {
	return prefix + strconv.FormatInt(a.now().UnixMilli(), 10)
}

// Compile-time interface check
var _ Authenticator = (*DemoAuthenticator)(nil)
