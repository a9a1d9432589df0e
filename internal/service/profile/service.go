package profile

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound   = errors.New("profile not found")
	ErrValidation = errors.New("profile validation failed")
)

// Profile represents stored profile data.
type Profile struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Instagram string
	YouTube   string
	CreatedAt time.Time
	// UpdatedAt is nil until the profile is first updated.
	UpdatedAt *time.Time
}

func (p Profile) clone() Profile {
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		p.UpdatedAt = &t
	}
	return p
}

// CreateParams for creating a profile.
type CreateParams struct {
	Name      string `validate:"required"`
	Email     string `validate:"required"`
	Phone     string `validate:"required"`
	Instagram string
	YouTube   string
}

// UpdateParams for updating a profile. Empty fields leave the stored value unchanged,
// so a field can be replaced but never cleared.
type UpdateParams struct {
	Name      string
	Email     string
	Phone     string
	Instagram string
	YouTube   string
}

// Service defines profile operations.
//
// Implementations must:
//   - return profiles in insertion order
//   - assign ids that are unique among live profiles
//   - return copies that callers may modify freely
type Service interface {
	List(ctx context.Context) ([]Profile, error)
	Create(ctx context.Context, params CreateParams) (*Profile, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Profile, error)
	Delete(ctx context.Context, id string) error
}
