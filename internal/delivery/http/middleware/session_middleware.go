// Package middleware contains the HTTP middleware chain.
package middleware

import (
	"washify/internal/delivery/http/response"
	domainerrors "washify/internal/domain/errors"
	"washify/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware guards protected routes behind the dashboard
// session. Requests are rejected while the session store is still
// initializing and when nobody is logged in.
type SessionMiddleware struct {
	auth usecase.AuthUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(auth usecase.AuthUsecase) *SessionMiddleware {
	return &SessionMiddleware{auth: auth}
}

// RequireSession rejects unauthenticated requests with the standard
// error envelope.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.auth.IsLoading() {
			return response.Error(c,
				domainerrors.ErrNotAuthenticated.HTTPCode(),
				domainerrors.ErrNotAuthenticated.ErrorCode(),
				domainerrors.ErrNotAuthenticated.Message(),
				"session store is still initializing")
		}

		if !m.auth.IsAuthenticated() {
			return response.Unauthorized(c,
				domainerrors.ErrNotAuthenticated.ErrorCode(),
				domainerrors.ErrNotAuthenticated.Message())
		}

		return next(c)
	}
}
