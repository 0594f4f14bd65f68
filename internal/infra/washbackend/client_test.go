package washbackend

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"washify/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(ClientParams{
		Config: &config.Config{
			Backend: &config.BackendConfig{
				BaseURL:        baseURL,
				Timeout:        5 * time.Second,
				RetryMax:       2,
				RetryBaseDelay: time.Millisecond,
			},
		},
		Tokens: NewTokenHolder(),
		Logger: testLogger(),
	})
	require.NoError(t, err)

	return client
}

func TestClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(ClientParams{
		Config: &config.Config{Backend: &config.BackendConfig{}},
		Tokens: NewTokenHolder(),
		Logger: testLogger(),
	})
	assert.Error(t, err)
}

func TestClient_GetAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)

	_, err := client.Get(context.Background(), "/api/orders", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "no session means no Authorization header")

	client.tokens.Set("tok-123")
	_, err = client.Get(context.Background(), "/api/orders", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_GetRetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		w.Write([]byte(`{"data":[1,2]}`))
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)

	body, err := client.Get(context.Background(), "/api/orders", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.NotEmpty(t, body)
}

func TestClient_GetDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"không tìm thấy"}`))
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)

	_, err := client.Get(context.Background(), "/api/orders/999", nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls, "4xx answers are not retried")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "không tìm thấy", apiErr.ServerMessage)
}

func TestClient_WritesAreNeverRetried(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)

	_, err := client.Post(context.Background(), "/api/branches", map[string]string{"name": "x"})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestClient_GetStopsOnCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "/api/orders", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractServerMessage(t *testing.T) {
	assert.Equal(t, "bad", extractServerMessage([]byte(`{"message":"bad"}`)))
	assert.Equal(t, "worse", extractServerMessage([]byte(`{"error":"worse"}`)))
	assert.Equal(t, "bad", extractServerMessage([]byte(`{"message":"bad","error":"worse"}`)))
	assert.Empty(t, extractServerMessage([]byte(`not json`)))
}
