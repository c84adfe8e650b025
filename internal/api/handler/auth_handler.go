package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/api/middleware"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
)

// AuthHandler handles the login exchange, logout and session introspection.
type AuthHandler struct {
	auth       ports.AuthService
	cookieName string
	cookieTTL  time.Duration
}

func NewAuthHandler(auth ports.AuthService, cookieName string, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, cookieName: cookieName, cookieTTL: cookieTTL}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Identity      *domain.Identity `json:"identity,omitempty"`
	Redirect      string           `json:"redirect,omitempty"`
}

// Login exchanges credentials for a session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sessionID := middleware.SessionIDFrom(c)
	if sessionID == "" {
		sessionID = newSessionID()
	}

	identity, landing, err := h.auth.Login(c.Request().Context(), sessionID, ports.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	h.setCookie(c, sessionID, h.cookieTTL)
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Identity:      identity,
		Redirect:      landing,
	})
}

// Logout erases the session and sends the visitor back to the login view.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sessionID := middleware.SessionIDFrom(c); sessionID != "" {
		if err := h.auth.Logout(c.Request().Context(), sessionID); err != nil {
			return err
		}
	}
	h.setCookie(c, "", -time.Hour)
	return c.JSON(http.StatusOK, sessionResponse{Redirect: "/login"})
}

// Session reports who is logged in on this session, if anyone.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Identity:      identity,
		Redirect:      identity.Role.Landing(),
	})
}

// LoginView handles GET /login. A visitor who is already authenticated with
// a known role is sent straight to their dashboard, mirroring the top-level
// redirect that runs when a persisted session is restored.
func (h *AuthHandler) LoginView(c echo.Context) error {
	if identity := middleware.IdentityFrom(c); identity != nil {
		if landing := identity.Role.Landing(); landing != "" {
			return c.Redirect(http.StatusFound, landing)
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "please log in"})
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// registerRoles accepts both the short path segments the SPA used and the
// full role names.
var registerRoles = map[string]domain.Role{
	"vet":          domain.RoleVeterinarian,
	"veterinarian": domain.RoleVeterinarian,
	"employee":     domain.RoleEmployee,
}

// Register creates a staff account. Admin console only; the backend
// re-checks the caller's privileges and answers 403 for non-admins.
//
// @Summary      Register a staff account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        role  path      string           true  "vet or employee"
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /admin/register/{role} [post]
func (h *AuthHandler) Register(c echo.Context) error {
	role, ok := registerRoles[c.Param("role")]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown registration role")
	}

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bearer, err := ctxBearer(c)
	if err != nil {
		return err
	}

	if err := h.auth.RegisterRole(c.Request().Context(), bearer, role, ports.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "account created"})
}

func (h *AuthHandler) setCookie(c echo.Context, sessionID string, ttl time.Duration) {
	cookie := &http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().Add(ttl)
	}
	c.SetCookie(cookie)
}

func newSessionID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
