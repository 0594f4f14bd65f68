package washbackend

import (
	"context"
	"encoding/json"
	"log/slog"

	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"
	"washify/internal/domain/repository"
	"washify/internal/errors"

	"go.uber.org/fx"
)

// AuthGatewayParams defines the parameters required for the auth gateway.
type AuthGatewayParams struct {
	fx.In

	Client *Client
	Logger *slog.Logger
}

type authGateway struct {
	client *Client
	logger *slog.Logger
}

// NewAuthGateway creates the login gateway.
func NewAuthGateway(params AuthGatewayParams) repository.AuthGateway {
	return &authGateway{
		client: params.Client,
		logger: params.Logger,
	}
}

// loginWire covers every login response shape the backend has been
// observed to emit: flat session fields under data, a nested
// data.user object, or token and user at the top level.
type loginWire struct {
	Success *bool        `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *entity.User `json:"user"`
	Data    *struct {
		Token string       `json:"token"`
		User  *entity.User `json:"user"`

		// Flattened session fields.
		UserID     int64    `json:"userId"`
		ID         int64    `json:"id"`
		Username   string   `json:"username"`
		FullName   string   `json:"fullName"`
		Name       string   `json:"name"`
		Email      string   `json:"email"`
		Phone      string   `json:"phone"`
		Roles      []string `json:"roles"`
		BranchID   int64    `json:"branchId"`
		BranchName string   `json:"branchName"`
		IsActive   *bool    `json:"isActive"`
	} `json:"data"`
}

// Login sends credentials and normalizes whichever response shape
// comes back into one Session. A response without an extractable token
// is a malformed-response failure, not a silent fallback.
func (g *authGateway) Login(ctx context.Context, creds entity.Credentials) (entity.Session, error) {
	body, err := g.client.Post(ctx, "/api/auth/login", creds)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.ServerMessage != "" {
			// Surface the backend's own rejection message verbatim.
			return entity.Session{}, domainerrors.NewBaseError(
				apiErr.StatusCode,
				domainerrors.ErrLoginFailed.ErrorCode(),
				apiErr.ServerMessage,
				"",
			)
		}

		return entity.Session{}, domainerrors.ErrLoginFailed.WrapMessage(err.Error())
	}

	var wire loginWire
	if err := json.Unmarshal(body, &wire); err != nil {
		g.logger.Warn("login response is not JSON", slog.Any("error", err))

		return entity.Session{}, domainerrors.ErrMalformedLoginResponse
	}

	if wire.Success != nil && !*wire.Success {
		if wire.Message != "" {
			return entity.Session{}, domainerrors.ErrLoginFailed.WithDetails(wire.Message)
		}

		return entity.Session{}, domainerrors.ErrLoginFailed
	}

	session, ok := normalizeLogin(wire)
	if !ok {
		g.logger.Warn("login response carried no extractable token")

		return entity.Session{}, domainerrors.ErrMalformedLoginResponse
	}

	return session, nil
}

// normalizeLogin folds the tolerated response shapes into one Session.
func normalizeLogin(wire loginWire) (entity.Session, bool) {
	// 1. Nested shape: {data: {token, user}}
	if wire.Data != nil && wire.Data.Token != "" && wire.Data.User != nil {
		return entity.Session{Token: wire.Data.Token, User: wire.Data.User}, true
	}

	// 2. Flattened shape: {data: {token, userId, username, ...}}
	if wire.Data != nil && wire.Data.Token != "" {
		d := wire.Data
		user := &entity.User{
			ID:         d.UserID,
			Username:   d.Username,
			FullName:   d.FullName,
			Email:      d.Email,
			Phone:      d.Phone,
			Roles:      d.Roles,
			BranchID:   d.BranchID,
			BranchName: d.BranchName,
			// Absent means active; only an explicit false deactivates.
			IsActive: d.IsActive == nil || *d.IsActive,
		}
		if user.ID == 0 {
			user.ID = d.ID
		}
		if user.FullName == "" {
			user.FullName = d.Name
		}
		if user.FullName == "" {
			user.FullName = d.Username
		}
		if len(user.Roles) == 0 {
			user.Roles = []string{"USER"}
		}

		return entity.Session{Token: d.Token, User: user}, true
	}

	// 3. Top-level shape: {token, user}
	if wire.Token != "" && wire.User != nil {
		return entity.Session{Token: wire.Token, User: wire.User}, true
	}

	return entity.Session{}, false
}
