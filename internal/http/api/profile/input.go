package profile

// ProfileFields is the request body for create and update. Every field is optional at
// the schema level; create enforces name, email and phone itself so the failure carries
// its fixed message. Unknown properties are ignored.
type ProfileFields struct {
	_         struct{} `json:"-"                   additionalProperties:"true"`
	Name      string   `json:"name,omitempty"      doc:"Display name"     example:"Jane Doe"`
	Email     string   `json:"email,omitempty"     doc:"Email address"    example:"jane@example.com"`
	Phone     string   `json:"phone,omitempty"     doc:"Phone number"     example:"555-0100"`
	Instagram string   `json:"instagram,omitempty" doc:"Instagram handle" example:"@jane"`
	YouTube   string   `json:"youtube,omitempty"   doc:"YouTube channel"  example:"janedoe"`
}

// ProfileListInput for GET /api/profiles (no body needed)
type ProfileListInput struct{}

// ProfileCreateInput for POST /api/profiles
type ProfileCreateInput struct {
	Body *ProfileFields
}

// ProfileUpdateInput for PUT /api/profiles/{id}. Empty fields keep their stored value.
type ProfileUpdateInput struct {
	ID   string `path:"id" doc:"Profile identifier" example:"1705314600000"`
	Body *ProfileFields
}

// ProfileDeleteInput for DELETE /api/profiles/{id}
type ProfileDeleteInput struct {
	ID string `path:"id" doc:"Profile identifier" example:"1705314600000"`
}

func (f *ProfileFields) orEmpty() ProfileFields {
	if f == nil {
		return ProfileFields{}
	}
	return *f
}
