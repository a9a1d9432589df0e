package auth

// Credentials is the login request body. Both fields are checked by the handler so a
// missing value yields 401 rather than a schema error.
type Credentials struct {
	_        struct{} `json:"-"                  additionalProperties:"true"`
	Email    string   `json:"email,omitempty"    doc:"Email address" example:"jane@example.com"`
	Password string   `json:"password,omitempty" doc:"Any non-empty password" example:"secret"`
}

// LoginInput for POST /api/auth/login
type LoginInput struct {
	Body *Credentials
}

// GoogleLoginInput for POST /api/auth/google (no body needed)
type GoogleLoginInput struct{}
