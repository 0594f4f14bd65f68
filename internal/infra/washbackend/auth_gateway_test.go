package washbackend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginGateway(t *testing.T, handler http.HandlerFunc) *authGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewAuthGateway(AuthGatewayParams{
		Client: testClient(t, srv.URL),
		Logger: testLogger(),
	}).(*authGateway)
}

func TestAuthGateway_NormalizesEveryLoginShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "flat data fields",
			body: `{"success":true,"data":{"token":"tok","userId":1,"username":"admin","fullName":"Quản trị viên","roles":["ADMIN"]}}`,
		},
		{
			name: "nested data user",
			body: `{"data":{"token":"tok","user":{"id":1,"username":"admin","fullName":"Quản trị viên","roles":["ADMIN"],"isActive":true}}}`,
		},
		{
			name: "top level token and user",
			body: `{"token":"tok","user":{"id":1,"username":"admin","fullName":"Quản trị viên","roles":["ADMIN"],"isActive":true}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := loginGateway(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/auth/login", r.URL.Path)
				w.Write([]byte(tt.body))
			})

			session, err := gw.Login(context.Background(), entity.Credentials{Username: "admin", Password: "secret"})
			require.NoError(t, err)
			assert.Equal(t, "tok", session.Token)
			require.NotNil(t, session.User)
			assert.Equal(t, int64(1), session.User.ID)
			assert.Equal(t, "admin", session.User.Username)
			assert.Equal(t, "Quản trị viên", session.User.FullName)
		})
	}
}

func TestAuthGateway_FlatShapeDefaults(t *testing.T) {
	gw := loginGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"token":"tok","id":3,"username":"staff01"}}`))
	})

	session, err := gw.Login(context.Background(), entity.Credentials{Username: "staff01", Password: "secret"})
	require.NoError(t, err)
	require.NotNil(t, session.User)
	assert.Equal(t, int64(3), session.User.ID, "id falls back when userId is absent")
	assert.Equal(t, "staff01", session.User.FullName, "full name falls back to the username")
	assert.Equal(t, []string{"USER"}, session.User.Roles)
	assert.True(t, session.User.IsActive, "absent isActive defaults to active")
}

func TestAuthGateway_SuccessFalseIsLoginFailure(t *testing.T) {
	gw := loginGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Sai mật khẩu"}`))
	})

	_, err := gw.Login(context.Background(), entity.Credentials{Username: "admin", Password: "wrong"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLoginFailed.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "Sai mật khẩu", appErr.Details())
}

func TestAuthGateway_RejectionMessageSurfacesVerbatim(t *testing.T) {
	gw := loginGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Tài khoản đã bị khóa"}`))
	})

	_, err := gw.Login(context.Background(), entity.Credentials{Username: "admin", Password: "secret"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "Tài khoản đã bị khóa", appErr.Message())
}

func TestAuthGateway_TokenlessResponseIsMalformed(t *testing.T) {
	gw := loginGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"username":"admin"}}`))
	})

	_, err := gw.Login(context.Background(), entity.Credentials{Username: "admin", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrMalformedLoginResponse)
}
