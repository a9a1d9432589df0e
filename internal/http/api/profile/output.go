package profile

// ProfileListOutput for GET /api/profiles
type ProfileListOutput struct {
	Body []Profile
}

// ProfileCreateOutput for POST /api/profiles (201 Created)
type ProfileCreateOutput struct {
	Body ProfileResponse
}

// ProfileUpdateOutput for PUT /api/profiles/{id}
type ProfileUpdateOutput struct {
	Body ProfileResponse
}

// ProfileDeleteOutput for DELETE /api/profiles/{id}
type ProfileDeleteOutput struct {
	Body DeleteResponse
}
