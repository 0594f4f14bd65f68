package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"washify/internal/delivery/http/response"
	"washify/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	loading       bool
	authenticated bool
}

func (f *fakeAuth) Initialize(ctx context.Context) error { return nil }
func (f *fakeAuth) Login(ctx context.Context, creds entity.Credentials) (entity.Session, error) {
	return entity.Session{}, nil
}
func (f *fakeAuth) Logout(ctx context.Context) {}
func (f *fakeAuth) Session() (entity.Session, bool) {
	return entity.Session{}, f.authenticated
}
func (f *fakeAuth) IsAuthenticated() bool { return f.authenticated }
func (f *fakeAuth) IsLoading() bool       { return f.loading }
func (f *fakeAuth) Subscribe(fn func(entity.Session)) func() {
	return func() {}
}

func runGuarded(t *testing.T, auth *fakeAuth) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	guard := NewSessionMiddleware(auth).RequireSession(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, guard(c))

	return rec
}

func TestRequireSession_RejectsWhileInitializing(t *testing.T) {
	rec := runGuarded(t, &fakeAuth{loading: true})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
}

func TestRequireSession_RejectsLoggedOut(t *testing.T) {
	rec := runGuarded(t, &fakeAuth{})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSession_PassesAuthenticatedRequests(t *testing.T) {
	rec := runGuarded(t, &fakeAuth{authenticated: true})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
