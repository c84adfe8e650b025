package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. Every failure mode,
// whether rejected credentials, a transport error, or a 2xx without a token,
// comes back as an AuthenticationError with a displayable message.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (string, error) {
	var out loginResponse
	err := c.do(ctx, "auth", http.MethodPost, "/auth/login", "", loginRequest{
		Email:    creds.Email,
		Password: creds.Password,
	}, &out)
	if err != nil {
		var authErr *domain.AuthenticationError
		if errors.As(err, &authErr) {
			return "", err
		}
		return "", &domain.AuthenticationError{
			Message: "login failed, please check your credentials or try again later",
			Cause:   err,
		}
	}
	if out.Token == "" {
		return "", &domain.AuthenticationError{Message: "login response carried no credential token"}
	}
	return out.Token, nil
}

// registerSegments maps roles onto their registration endpoints. Only roles
// listed here can be registered through the gateway.
var registerSegments = map[domain.Role]string{
	domain.RoleVeterinarian: "vet",
	domain.RoleEmployee:     "employee",
}

// Register creates an account for the given role. The backend enforces that
// the bearer belongs to an admin and answers 403 otherwise.
func (c *Client) Register(ctx context.Context, bearer string, role domain.Role, input ports.RegisterInput) error {
	segment, ok := registerSegments[role]
	if !ok {
		return &domain.ValidationError{Message: "accounts cannot be registered for role " + string(role)}
	}
	return c.do(ctx, "auth", http.MethodPost, "/auth/register/"+segment, bearer, registerRequest{
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	}, nil)
}
