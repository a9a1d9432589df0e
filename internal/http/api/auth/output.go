package auth

// LoginOutput for POST /api/auth/login and POST /api/auth/google
type LoginOutput struct {
	Body SessionResponse
}
