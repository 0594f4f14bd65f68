package handler

import (
	"net/http"

	"washify/internal/delivery/http/response"
	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"
	"washify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session-related handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var creds entity.Credentials
	if err := c.Bind(&creds); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	session, err := h.uc.Login(c.Request().Context(), creds)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Đăng nhập thành công")
}

// Logout clears the session. It always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.uc.Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, nil, "Đăng xuất thành công")
}

// Me returns the current session.
func (h *AuthHandler) Me(c echo.Context) error {
	session, ok := h.uc.Session()
	if !ok {
		return response.Unauthorized(c,
			domainerrors.ErrNotAuthenticated.ErrorCode(),
			domainerrors.ErrNotAuthenticated.Message())
	}

	return response.Success(c, http.StatusOK, session, "OK")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
