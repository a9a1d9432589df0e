package profile

import (
	"github.com/janisto/dashboard-api/internal/platform/timeutil"
)

// Profile represents a profile response.
type Profile struct {
	ID        string         `json:"id"                  doc:"Unique identifier (creation time in Unix ms)" example:"1705314600000"`
	Name      string         `json:"name"                doc:"Display name"                                 example:"Jane Doe"`
	Email     string         `json:"email"               doc:"Email address"                                example:"jane@example.com"`
	Phone     string         `json:"phone"               doc:"Phone number"                                 example:"555-0100"`
	Instagram string         `json:"instagram"           doc:"Instagram handle, empty when unset"           example:"@jane"`
	YouTube   string         `json:"youtube"             doc:"YouTube channel, empty when unset"            example:"janedoe"`
	CreatedAt timeutil.Time  `json:"createdAt"           doc:"Creation timestamp"                           example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt *timeutil.Time `json:"updatedAt,omitempty" doc:"Last update timestamp, absent until updated"  example:"2024-01-15T11:00:00.000Z"`
}

// ProfileResponse wraps a single profile.
type ProfileResponse struct {
	Success bool    `json:"success" doc:"Always true" example:"true"`
	Profile Profile `json:"profile"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Success bool   `json:"success" doc:"Always true"          example:"true"`
	Message string `json:"message" doc:"Confirmation message" example:"Profile deleted successfully"`
}
