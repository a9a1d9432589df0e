package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"

	authhandler "github.com/janisto/dashboard-api/internal/http/api/auth"
	"github.com/janisto/dashboard-api/internal/http/api/dashboard"
	"github.com/janisto/dashboard-api/internal/http/api/profile"
	"github.com/janisto/dashboard-api/internal/platform/auth"
	profilesvc "github.com/janisto/dashboard-api/internal/service/profile"
)

// DocsPath serves the interactive API reference.
const DocsPath = "/api-docs"

// NewAPI mounts a huma API on router. Errors are rendered by the respond package, so
// respond.Install must run first.
func NewAPI(router chi.Router, title, version string) huma.API {
	cfg := huma.DefaultConfig(title, version)
	cfg.DocsPath = DocsPath
	// Response bodies match the documented payloads exactly, without a $schema link.
	cfg.CreateHooks = nil
	api := humachi.New(router, cfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)
	return api
}

// Register wires all API operations into the provided API.
func Register(api huma.API, profileService profilesvc.Service, authenticator auth.Authenticator) {
	dashboard.Register(api)
	authhandler.Register(api, authenticator)
	profile.Register(api, profileService)
}
