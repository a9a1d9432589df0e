package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/dashboard-api/internal/platform/logging"
	"github.com/janisto/dashboard-api/internal/platform/timeutil"
	profilesvc "github.com/janisto/dashboard-api/internal/service/profile"
)

// Client-facing messages.
const (
	MsgNotFound = "Profile not found"
	MsgDeleted  = "Profile deleted successfully"
)

const auditResource = "profile"

// Register registers profile endpoints.
func Register(api huma.API, svc profilesvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-profiles",
		Method:      http.MethodGet,
		Path:        "/api/profiles",
		Summary:     "List profiles",
		Description: "Returns every stored profile in creation order.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, _ *ProfileListInput) (*ProfileListOutput, error) {
		profiles, err := svc.List(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}
		out := make([]Profile, 0, len(profiles))
		for i := range profiles {
			out = append(out, toHTTPProfile(&profiles[i]))
		}
		return &ProfileListOutput{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-profile",
		Method:        http.MethodPost,
		Path:          "/api/profiles",
		Summary:       "Create profile",
		Description:   "Creates a profile. Name, email and phone are required.",
		Tags:          []string{"Profiles"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *ProfileCreateInput) (*ProfileCreateOutput, error) {
		body := input.Body.orEmpty()
		params := profilesvc.CreateParams{
			Name:      body.Name,
			Email:     body.Email,
			Phone:     body.Phone,
			Instagram: body.Instagram,
			YouTube:   body.YouTube,
		}
		if err := profilesvc.ValidateCreate(params); err != nil {
			return nil, mapServiceError(err)
		}

		profile, err := svc.Create(ctx, params)
		if err != nil {
			applog.LogAuditEvent(ctx, "create", auditResource, "", applog.AuditFailure, nil)
			return nil, mapServiceError(err)
		}
		applog.LogAuditEvent(ctx, "create", auditResource, profile.ID, applog.AuditSuccess, nil)
		return &ProfileCreateOutput{
			Body: ProfileResponse{Success: true, Profile: toHTTPProfile(profile)},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/api/profiles/{id}",
		Summary:     "Update profile",
		Description: "Replaces the fields given with a non-empty value. Empty or missing fields keep their current value.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileUpdateInput) (*ProfileUpdateOutput, error) {
		body := input.Body.orEmpty()
		profile, err := svc.Update(ctx, input.ID, profilesvc.UpdateParams{
			Name:      body.Name,
			Email:     body.Email,
			Phone:     body.Phone,
			Instagram: body.Instagram,
			YouTube:   body.YouTube,
		})
		if err != nil {
			applog.LogAuditEvent(ctx, "update", auditResource, input.ID, applog.AuditFailure, nil)
			return nil, mapServiceError(err)
		}
		applog.LogAuditEvent(ctx, "update", auditResource, input.ID, applog.AuditSuccess, nil)
		return &ProfileUpdateOutput{
			Body: ProfileResponse{Success: true, Profile: toHTTPProfile(profile)},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-profile",
		Method:      http.MethodDelete,
		Path:        "/api/profiles/{id}",
		Summary:     "Delete profile",
		Description: "Permanently removes the profile.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileDeleteInput) (*ProfileDeleteOutput, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			applog.LogAuditEvent(ctx, "delete", auditResource, input.ID, applog.AuditFailure, nil)
			return nil, mapServiceError(err)
		}
		applog.LogAuditEvent(ctx, "delete", auditResource, input.ID, applog.AuditSuccess, nil)
		return &ProfileDeleteOutput{
			Body: DeleteResponse{Success: true, Message: MsgDeleted},
		}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, profilesvc.ErrValidation):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, profilesvc.ErrNotFound):
		return huma.Error404NotFound(MsgNotFound)
	default:
		return huma.Error500InternalServerError("profile operation failed", err)
	}
}

func toHTTPProfile(p *profilesvc.Profile) Profile {
	return Profile{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Instagram: p.Instagram,
		YouTube:   p.YouTube,
		CreatedAt: timeutil.NewTime(p.CreatedAt),
		UpdatedAt: timeutil.Ptr(p.UpdatedAt),
	}
}
