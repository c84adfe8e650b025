package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
)

type stubAuthService struct {
	identity *domain.Identity
	landing  string
	loginErr error

	loggedOut    string
	registered   domain.Role
	registerErr  error
	registeredBy string
}

func (s *stubAuthService) Login(_ context.Context, _ string, _ ports.Credentials) (*domain.Identity, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	return s.identity, s.landing, nil
}

func (s *stubAuthService) Logout(_ context.Context, sessionID string) error {
	s.loggedOut = sessionID
	return nil
}

func (s *stubAuthService) RegisterRole(_ context.Context, bearer string, role domain.Role, _ ports.RegisterInput) error {
	if s.registerErr != nil {
		return s.registerErr
	}
	s.registered = role
	s.registeredBy = bearer
	return nil
}

func newAuthContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		identity: &domain.Identity{Subject: "user_1", Role: domain.RoleAdmin},
		landing:  "/admin/dashboard",
	}
	h := NewAuthHandler(svc, "arcadia_session", time.Hour)

	c, rec := newAuthContext(t, http.MethodPost, "/login", `{"email":"jose@zoo-arcadia.fr","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Authenticated {
		t.Fatalf("expected authenticated response")
	}
	if resp.Redirect != "/admin/dashboard" {
		t.Fatalf("expected admin landing, got %q", resp.Redirect)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "arcadia_session" || cookies[0].Value == "" {
		t.Fatalf("expected a session cookie, got %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
}

func TestAuthHandler_Login_ReusesExistingSession(t *testing.T) {
	svc := &stubAuthService{
		identity: &domain.Identity{Subject: "user_1", Role: domain.RoleEmployee},
		landing:  "/employee/dashboard",
	}
	h := NewAuthHandler(svc, "arcadia_session", time.Hour)

	c, rec := newAuthContext(t, http.MethodPost, "/login", `{"email":"jose@zoo-arcadia.fr","password":"s3cret"}`)
	c.Set("session_id", "sess_existing")
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "sess_existing" {
		t.Fatalf("expected cookie to keep existing session id, got %+v", cookies)
	}
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, "arcadia_session", time.Hour)

	c, _ := newAuthContext(t, http.MethodPost, "/login", `{"email":"not-an-email","password":""}`)
	err := h.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_RejectedCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: &domain.AuthenticationError{Message: "authentication rejected by the zoo service"}}
	h := NewAuthHandler(svc, "arcadia_session", time.Hour)

	c, rec := newAuthContext(t, http.MethodPost, "/login", `{"email":"jose@zoo-arcadia.fr","password":"wrong"}`)
	err := h.Login(c)

	var authErr *domain.AuthenticationError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthenticationError, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie may be set on a failed login")
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, "arcadia_session", time.Hour)

	c, rec := newAuthContext(t, http.MethodPost, "/logout", "")
	c.Set("session_id", "sess_1")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if svc.loggedOut != "sess_1" {
		t.Fatalf("expected logout for sess_1, got %q", svc.loggedOut)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Redirect != "/login" {
		t.Fatalf("expected redirect to /login, got %q", resp.Redirect)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected expired session cookie, got %+v", cookies)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, "arcadia_session", time.Hour)

	c, rec := newAuthContext(t, http.MethodGet, "/session", "")
	if err := h.Session(c); err != nil {
		t.Fatalf("Session returned error: %v", err)
	}
	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Authenticated {
		t.Fatalf("expected anonymous session")
	}

	c, rec = newAuthContext(t, http.MethodGet, "/session", "")
	c.Set("identity", &domain.Identity{Subject: "user_1", Role: domain.RoleVeterinarian})
	if err := h.Session(c); err != nil {
		t.Fatalf("Session returned error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Authenticated || resp.Redirect != "/vet/dashboard" {
		t.Fatalf("unexpected session response: %+v", resp)
	}
}

func TestAuthHandler_LoginView_RedirectsAuthenticated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, "arcadia_session", time.Hour)

	c, rec := newAuthContext(t, http.MethodGet, "/login", "")
	c.Set("identity", &domain.Identity{Subject: "user_1", Role: domain.RoleAdmin})
	if err := h.LoginView(c); err != nil {
		t.Fatalf("LoginView returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/dashboard" {
		t.Fatalf("expected redirect to /admin/dashboard, got %q", loc)
	}
}

func TestAuthHandler_LoginView_UnknownRoleStays(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, "arcadia_session", time.Hour)

	c, rec := newAuthContext(t, http.MethodGet, "/login", "")
	c.Set("identity", &domain.Identity{Subject: "user_1", Role: domain.Role("zookeeper")})
	if err := h.LoginView(c); err != nil {
		t.Fatalf("LoginView returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown role must stay on the login view, got %d", rec.Code)
	}
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, "arcadia_session", time.Hour)

	c, rec := newAuthContext(t, http.MethodPost, "/admin/register/vet",
		`{"email":"vet@zoo-arcadia.fr","username":"newvet","password":"s3cret1"}`)
	c.SetParamNames("role")
	c.SetParamValues("vet")
	c.Set("bearer_token", "tok_admin")

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.registered != domain.RoleVeterinarian {
		t.Fatalf("expected veterinarian registration, got %q", svc.registered)
	}
	if svc.registeredBy != "tok_admin" {
		t.Fatalf("expected bearer forwarded, got %q", svc.registeredBy)
	}
}

func TestAuthHandler_Register_UnknownRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, "arcadia_session", time.Hour)

	c, _ := newAuthContext(t, http.MethodPost, "/admin/register/alien",
		`{"email":"x@zoo-arcadia.fr","username":"xx","password":"s3cret1"}`)
	c.SetParamNames("role")
	c.SetParamValues("alien")

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_MissingBearer(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, "arcadia_session", time.Hour)

	c, _ := newAuthContext(t, http.MethodPost, "/admin/register/employee",
		`{"email":"e@zoo-arcadia.fr","username":"emp","password":"s3cret1"}`)
	c.SetParamNames("role")
	c.SetParamValues("employee")

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
