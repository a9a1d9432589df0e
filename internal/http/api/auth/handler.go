package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	authsvc "github.com/janisto/dashboard-api/internal/platform/auth"
	applog "github.com/janisto/dashboard-api/internal/platform/logging"
	"github.com/janisto/dashboard-api/internal/platform/metrics"
)

// MsgInvalidCredentials is returned when the email or password is missing.
const MsgInvalidCredentials = "Invalid credentials"

// Providers used as metric and audit labels.
const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
)

// Register registers sign-in endpoints.
func Register(api huma.API, authenticator authsvc.Authenticator) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Sign in with email and password",
		Description: "Demo sign-in: any non-empty email and password pair succeeds.",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
		var creds Credentials
		if input.Body != nil {
			creds = *input.Body
		}
		session, err := authenticator.Login(ctx, creds.Email, creds.Password)
		if err != nil {
			recordLogin(ctx, ProviderPassword, creds.Email, err)
			return nil, mapAuthError(err)
		}
		recordLogin(ctx, ProviderPassword, session.User.Email, nil)
		return &LoginOutput{Body: toSessionResponse(session)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "login-google",
		Method:      http.MethodPost,
		Path:        "/api/auth/google",
		Summary:     "Sign in with Google",
		Description: "Demo Google sign-in: always returns the same account.",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, _ *GoogleLoginInput) (*LoginOutput, error) {
		session, err := authenticator.GoogleLogin(ctx)
		if err != nil {
			recordLogin(ctx, ProviderGoogle, "", err)
			return nil, mapAuthError(err)
		}
		recordLogin(ctx, ProviderGoogle, session.User.Email, nil)
		return &LoginOutput{Body: toSessionResponse(session)}, nil
	})
}

func recordLogin(ctx context.Context, provider, email string, err error) {
	result, audit := metrics.ResultSuccess, applog.AuditSuccess
	if err != nil {
		result, audit = metrics.ResultFailure, applog.AuditFailure
	}
	metrics.RecordLogin(provider, result)
	applog.LogAuditEvent(ctx, "login", "session", email, audit, map[string]any{"provider": provider})
}

func mapAuthError(err error) error {
	if errors.Is(err, authsvc.ErrInvalidCredentials) {
		return huma.Error401Unauthorized(MsgInvalidCredentials)
	}
	return huma.Error500InternalServerError("sign-in failed", err)
}

func toSessionResponse(s *authsvc.Session) SessionResponse {
	return SessionResponse{
		Success: true,
		User: User{
			ID:     s.User.ID,
			Email:  s.User.Email,
			Name:   s.User.Name,
			Avatar: s.User.Avatar,
		},
		Token: s.Token,
	}
}
