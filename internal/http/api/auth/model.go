package auth

// User is the signed-in identity.
type User struct {
	ID     string `json:"id"     doc:"User identifier"     example:"1"`
	Email  string `json:"email"  doc:"Email address"       example:"jane@example.com"`
	Name   string `json:"name"   doc:"Display name"        example:"jane"`
	Avatar string `json:"avatar" doc:"Avatar picture URL"`
}

// SessionResponse is returned by both sign-in endpoints.
type SessionResponse struct {
	Success bool   `json:"success" doc:"Always true"                         example:"true"`
	User    User   `json:"user"`
	Token   string `json:"token"   doc:"Opaque demo token, not a real JWT" example:"mock_jwt_token_1705314600000"`
}
