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

func TestDecodePayload_ShapeTolerance(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []int
	}{
		{name: "full envelope", body: `{"success":true,"data":[1,2,3]}`, want: []int{1, 2, 3}},
		{name: "data wrapper", body: `{"data":[1,2]}`, want: []int{1, 2}},
		{name: "bare array", body: `[7]`, want: []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out []int
			require.NoError(t, decodePayload([]byte(tt.body), &out))
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDecodePayload_SuccessFalseMeansNoData(t *testing.T) {
	var out []int
	err := decodePayload([]byte(`{"success":false,"message":"maintenance","data":[1,2]}`), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maintenance")
	assert.Nil(t, out, "a rejected response must never yield its data field")
}

func TestDecodePayload_EmptyBody(t *testing.T) {
	var out []int
	require.NoError(t, decodePayload(nil, &out))
	assert.Nil(t, out)
}

func TestFetchList_TransportFailureDegradesToFailedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)

	env := fetchList[entity.Order](context.Background(), client, "/api/orders", "order")
	assert.False(t, env.Success)
	assert.Equal(t, domainerrors.ErrGatewayRead.Message(), env.Message)
	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Data, "fallback is an empty slice, never nil")
}

func TestFetchList_NullDataBecomesEmptySlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":null}`))
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)

	env := fetchList[entity.Order](context.Background(), client, "/api/orders", "order")
	assert.True(t, env.Success)
	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Data)
}

func TestOrderGateway_ListAndUpdateStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders":
			w.Write([]byte(`{"success":true,"data":[{"id":1,"orderCode":"DH001","status":"PENDING"}]}`))
		case r.Method == http.MethodPatch && r.URL.Path == "/api/orders/1/status":
			w.Write([]byte(`{"success":true,"data":{"id":1,"orderCode":"DH001","status":"CONFIRMED"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)
	gw := NewOrderGateway(GatewayParams{Client: client, Logger: testLogger()})

	env := gw.List(context.Background())
	require.True(t, env.Success)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "DH001", env.Data[0].OrderCode)

	order, err := gw.UpdateStatus(context.Background(), 1, "CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", order.Status)
}

func TestUserGateway_WriteErrorsPropagate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"đang có đơn hàng"}`))
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)
	gw := NewUserGateway(GatewayParams{Client: client, Logger: testLogger()})

	err := gw.Remove(context.Background(), 5)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrGatewayWrite.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "đang có đơn hàng")

	// The raw backend answer stays reachable behind the taxonomy error.
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestNotificationGateway_UnreadCountShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "bare number", body: `4`, want: 4},
		{name: "count object", body: `{"count":7}`, want: 7},
		{name: "enveloped count", body: `{"success":true,"data":{"count":9}}`, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			gw := NewNotificationGateway(GatewayParams{Client: testClient(t, srv.URL), Logger: testLogger()})

			env := gw.UnreadCount(context.Background())
			require.True(t, env.Success)
			assert.Equal(t, tt.want, env.Data)
		})
	}
}
