package paymentgateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestClient_CreateOrder_Success(t *testing.T) {
	var gotReq CreateOrderRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Order{
			OrderID:     "order_abc",
			AmountMinor: 75000,
			Currency:    "INR",
			Receipt:     gotReq.Receipt,
			Status:      "created",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key_id", "key_secret", 2*time.Second, nopLogger{})

	order, err := client.CreateOrder(context.Background(), &CreateOrderRequest{
		AmountMinor: 75000,
		Currency:    "INR",
		Receipt:     "booking_r1",
	})

	require.NoError(t, err)
	assert.Equal(t, "order_abc", order.OrderID)
	assert.Equal(t, int64(75000), order.AmountMinor)
	assert.Equal(t, int64(75000), gotReq.AmountMinor)
	assert.Equal(t, "booking_r1", gotReq.Receipt)
}

func TestClient_CreateOrder_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key_id", "key_secret", 2*time.Second, nopLogger{})

	_, err := client.CreateOrder(context.Background(), &CreateOrderRequest{AmountMinor: 100, Currency: "INR"})

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestClient_CreateOrder_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key_id", "key_secret", 50*time.Millisecond, nopLogger{})

	_, err := client.CreateOrder(context.Background(), &CreateOrderRequest{AmountMinor: 100, Currency: "INR"})

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestClient_CreateOrder_BadRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Code: "BAD_REQUEST", Message: "amount required"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key_id", "key_secret", 2*time.Second, nopLogger{})

	_, err := client.CreateOrder(context.Background(), &CreateOrderRequest{Currency: "INR"})

	// 4xx это не "шлюз недоступен", повторять бесполезно
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_CreateOrder_EmptyOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Order{AmountMinor: 100})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key_id", "key_secret", 2*time.Second, nopLogger{})

	_, err := client.CreateOrder(context.Background(), &CreateOrderRequest{AmountMinor: 100, Currency: "INR"})

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_VerifySignature(t *testing.T) {
	client := NewClient("http://localhost", "key_id", "secret", time.Second, nopLogger{})

	valid := computeSignature("order_abc", "pay_123", "secret")

	require.NoError(t, client.VerifySignature("order_abc", "pay_123", valid))

	assert.ErrorIs(t, client.VerifySignature("order_abc", "pay_123", "tampered"), ErrInvalidSignature)
	assert.ErrorIs(t, client.VerifySignature("order_xyz", "pay_123", valid), ErrInvalidSignature)
	assert.ErrorIs(t, client.VerifySignature("order_abc", "pay_999", valid), ErrInvalidSignature)
	assert.ErrorIs(t, client.VerifySignature("order_abc", "pay_123", ""), ErrInvalidSignature)
}
