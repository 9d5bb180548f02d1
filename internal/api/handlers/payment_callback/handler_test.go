package payment_callback

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	confirmPayment "github.com/sportshunt/turf-booking-service/internal/usecase/confirm_payment"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockUseCase struct {
	resp *confirmPayment.Response
	err  error
}

func (m *mockUseCase) Execute(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func doCallback(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_PaymentConfirmed(t *testing.T) {
	uc := &mockUseCase{resp: &confirmPayment.Response{OrderID: "order_abc", BookingID: 101}}
	h := NewHandler(uc, nopLogger{})

	rec := doCallback(t, h, `{"orderId":"order_abc","paymentId":"pay_123","signature":"deadbeef"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp PaymentCallbackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "order_abc", resp.OrderID)
	assert.Equal(t, int64(101), resp.BookingID)
	assert.Equal(t, "paid", resp.Status)
	assert.False(t, resp.AlreadyPaid)
}

func TestHandle_DuplicateCallback(t *testing.T) {
	uc := &mockUseCase{resp: &confirmPayment.Response{OrderID: "order_abc", BookingID: 101, AlreadyPaid: true}}
	h := NewHandler(uc, nopLogger{})

	rec := doCallback(t, h, `{"orderId":"order_abc","paymentId":"pay_123","signature":"deadbeef"}`)

	// Дубликат отвечает успехом, но помечен как уже оплаченный
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp PaymentCallbackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.AlreadyPaid)
}

func TestHandle_InvalidSignature(t *testing.T) {
	uc := &mockUseCase{err: confirmPayment.ErrInvalidSignature}
	h := NewHandler(uc, nopLogger{})

	rec := doCallback(t, h, `{"orderId":"order_abc","paymentId":"pay_123","signature":"tampered"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MissingParams(t *testing.T) {
	uc := &mockUseCase{err: confirmPayment.ErrMissingParams}
	h := NewHandler(uc, nopLogger{})

	rec := doCallback(t, h, `{"orderId":"order_abc"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_OrderNotFound(t *testing.T) {
	uc := &mockUseCase{err: confirmPayment.ErrOrderNotFound}
	h := NewHandler(uc, nopLogger{})

	rec := doCallback(t, h, `{"orderId":"order_xyz","paymentId":"pay_123","signature":"deadbeef"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&mockUseCase{}, nopLogger{})

	rec := doCallback(t, h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
