package main

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/dashboard-api/internal/platform/auth"
	"github.com/janisto/dashboard-api/internal/platform/config"
	"github.com/janisto/dashboard-api/internal/platform/respond"
	profilesvc "github.com/janisto/dashboard-api/internal/service/profile"
)

type profileJSON struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Instagram string  `json:"instagram"`
	YouTube   string  `json:"youtube"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`
}

type profileEnvelope struct {
	Success bool        `json:"success"`
	Profile profileJSON `json:"profile"`
	Message string      `json:"message"`
}

func testServer(t *testing.T, mutate ...func(*config.Config)) http.Handler {
	t.Helper()
	cfg := config.Default()
	for _, m := range mutate {
		m(cfg)
	}
	return newRouter(cfg, profilesvc.Instrumented(profilesvc.NewMemoryStore()), auth.NewDemoAuthenticator())
}

func send(srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	srv.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(resp.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal %q: %v", resp.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "test-health-req")
	resp := httptest.NewRecorder()
	srv.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", resp.Code)
	}
	if got := resp.Header().Get(chimiddleware.RequestIDHeader); got != "test-health-req" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
	body := decode[map[string]string](t, resp)
	if body["status"] != "OK" || body["message"] != "Server is running" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestProfileLifecycle(t *testing.T) {
	srv := testServer(t)

	// Create with the required fields.
	resp := send(srv, http.MethodPost, "/api/profiles", `{"name":"Asha","email":"a@x.com","phone":"123"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	created := decode[profileEnvelope](t, resp)
	if !created.Success {
		t.Fatal("create: expected success=true")
	}
	p := created.Profile
	if p.ID == "" || p.Name != "Asha" || p.Email != "a@x.com" || p.Phone != "123" {
		t.Fatalf("create: unexpected profile %+v", p)
	}
	if p.Instagram != "" || p.YouTube != "" || p.UpdatedAt != nil {
		t.Fatalf("create: unexpected optional fields %+v", p)
	}
	if _, err := time.Parse(time.RFC3339, p.CreatedAt); err != nil {
		t.Fatalf("create: createdAt %q is not RFC 3339: %v", p.CreatedAt, err)
	}

	// Empty name is rejected.
	resp = send(srv, http.MethodPost, "/api/profiles", `{"name":"","email":"a@x.com","phone":"123"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("invalid create: expected 400, got %d", resp.Code)
	}
	if e := decode[respond.ErrorBody](t, resp); e.Success || e.Message != "Name, email, and phone are required" {
		t.Fatalf("invalid create: unexpected body %+v", e)
	}

	// Partial update keeps the other fields.
	resp = send(srv, http.MethodPut, "/api/profiles/"+p.ID, `{"name":"Asha K"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	updated := decode[profileEnvelope](t, resp).Profile
	if updated.Name != "Asha K" || updated.Email != "a@x.com" || updated.Phone != "123" {
		t.Fatalf("update: unexpected profile %+v", updated)
	}
	if updated.UpdatedAt == nil || updated.CreatedAt != p.CreatedAt {
		t.Fatalf("update: unexpected timestamps %+v", updated)
	}

	// List holds exactly the one profile.
	resp = send(srv, http.MethodGet, "/api/profiles", "")
	if list := decode[[]profileJSON](t, resp); len(list) != 1 || list[0].Name != "Asha K" {
		t.Fatalf("list: unexpected %+v", list)
	}

	// Delete, then the list is empty.
	resp = send(srv, http.MethodDelete, "/api/profiles/"+p.ID, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.Code)
	}
	if d := decode[profileEnvelope](t, resp); !d.Success || d.Message != "Profile deleted successfully" {
		t.Fatalf("delete: unexpected body %s", resp.Body.String())
	}
	resp = send(srv, http.MethodGet, "/api/profiles", "")
	if got := strings.TrimSpace(resp.Body.String()); got != "[]" {
		t.Fatalf("list after delete: expected [], got %s", got)
	}

	// Deleting again reports not found.
	resp = send(srv, http.MethodDelete, "/api/profiles/"+p.ID, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", resp.Code)
	}
	if e := decode[respond.ErrorBody](t, resp); e.Message != "Profile not found" {
		t.Fatalf("second delete: unexpected body %+v", e)
	}
}

func TestLogin(t *testing.T) {
	srv := testServer(t)

	resp := send(srv, http.MethodPost, "/api/auth/login", `{"email":"u@x.com","password":"p"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
		User    struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"user"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if !body.Success || body.User.Name != "u" || body.User.ID != "1" || !strings.HasPrefix(body.Token, "mock_jwt_token_") {
		t.Fatalf("unexpected login body: %s", resp.Body.String())
	}

	resp = send(srv, http.MethodPost, "/api/auth/login", `{"email":"u@x.com"}`)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if e := decode[respond.ErrorBody](t, resp); e.Message != "Invalid credentials" {
		t.Fatalf("unexpected body %+v", e)
	}
}

func TestAuthRateLimit(t *testing.T) {
	srv := testServer(t, func(c *config.Config) {
		c.AuthRateLimit = 2
		c.AuthRateWindow = time.Minute
	})

	for i := range 2 {
		if resp := send(srv, http.MethodPost, "/api/auth/google", ""); resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, resp.Code)
		}
	}
	resp := send(srv, http.MethodPost, "/api/auth/google", "")
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if e := decode[respond.ErrorBody](t, resp); e.Success || e.Message != "Too many requests" {
		t.Fatalf("unexpected body %+v", e)
	}

	// Other routes are not limited.
	for range 5 {
		if resp := send(srv, http.MethodGet, "/api/metrics", ""); resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for unlimited route, got %d", resp.Code)
		}
	}
}

func TestDashboardEndpoints(t *testing.T) {
	srv := testServer(t)

	for _, path := range []string{"/api/metrics", "/api/activities", "/api/products", "/api/fleet", "/api/sustainability"} {
		resp := send(srv, http.MethodGet, path, "")
		if resp.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, resp.Code)
		}
		if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("%s: expected application/json, got %q", path, ct)
		}
	}
}

func TestNotFound(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/api/unknown"},
		{"unsupported method", http.MethodPatch, "/api/profiles"},
		{"post to health", http.MethodPost, "/api/health"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := send(srv, tt.method, tt.path, "")
			if resp.Code != http.StatusNotFound {
				t.Fatalf("expected 404 got %d", resp.Code)
			}
			if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected application/json content type, got %q", ct)
			}
			if e := decode[respond.ErrorBody](t, resp); e.Success || e.Message != "Route not found" {
				t.Fatalf("unexpected body %+v", e)
			}
		})
	}
}

func TestNotFoundAsCBOR(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("Accept", "application/cbor")
	resp := httptest.NewRecorder()
	srv.ServeHTTP(resp, req)

	if ct := resp.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Fatalf("expected application/cbor, got %q", ct)
	}
	var body respond.ErrorBody
	if err := cbor.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("cbor unmarshal: %v", err)
	}
	if body.Message != "Route not found" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestCreateProfileAsCBOR(t *testing.T) {
	srv := testServer(t)
	payload, err := cbor.Marshal(map[string]string{"name": "A", "email": "a@x", "phone": "1"})
	if err != nil {
		t.Fatalf("cbor marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/profiles", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/cbor")
	req.Header.Set("Accept", "application/cbor")
	resp := httptest.NewRecorder()
	srv.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var body profileEnvelope
	if err := cbor.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("cbor unmarshal: %v", err)
	}
	if !body.Success || body.Profile.Name != "A" {
		t.Fatalf("unexpected body %+v", body)
	}
	if !strings.HasSuffix(body.Profile.CreatedAt, "Z") {
		t.Fatalf("expected UTC text timestamp, got %q", body.Profile.CreatedAt)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/profiles/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	resp := httptest.NewRecorder()
	srv.ServeHTTP(resp, req)

	if got := resp.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Fatal("expected Access-Control-Allow-Origin to be set")
	}
	if got := resp.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPut) {
		t.Fatalf("expected PUT to be allowed, got %q", got)
	}
}

func TestSecurityHeadersSkipDocs(t *testing.T) {
	srv := testServer(t)

	resp := send(srv, http.MethodGet, "/api/metrics", "")
	if resp.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatal("expected X-Frame-Options on API responses")
	}
	resp = send(srv, http.MethodGet, "/api-docs", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected docs 200, got %d", resp.Code)
	}
	if resp.Header().Get("X-Frame-Options") != "" {
		t.Fatal("expected docs to skip security headers")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := testServer(t)
	send(srv, http.MethodGet, "/api/profiles", "")

	resp := send(srv, http.MethodGet, "/metrics", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	out := resp.Body.String()
	for _, name := range []string{"dashboard_http_requests_total", "dashboard_profile_operations_total"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %s in exposition", name)
		}
	}
	if !strings.Contains(out, `route="/api/profiles"`) {
		t.Error("expected route pattern label for /api/profiles")
	}
}

func TestOversizedBodyIsRejected(t *testing.T) {
	srv := testServer(t, func(c *config.Config) { c.MaxBodyBytes = 64 })

	body := `{"name":"` + strings.Repeat("a", 256) + `","email":"a@x","phone":"1"}`
	resp := send(srv, http.MethodPost, "/api/profiles", body)
	if resp.Code < 400 || resp.Code >= 500 {
		t.Fatalf("expected a client error, got %d", resp.Code)
	}
	if e := decode[respond.ErrorBody](t, resp); e.Success {
		t.Fatalf("unexpected body %+v", e)
	}
}

func TestListenErrorChannel(t *testing.T) {
	listenErr := make(chan error, 1)

	expectedErr := &net.OpError{Op: "listen", Net: "tcp", Err: errors.New("address already in use")}
	go func() {
		listenErr <- expectedErr
	}()

	select {
	case err := <-listenErr:
		if !strings.Contains(err.Error(), "address already in use") {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for error")
	}
}

func TestServerShutdown(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              "127.0.0.1:0",
		Handler:           router,
		ReadHeaderTimeout: time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(ln)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
	if err := <-served; !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
}
