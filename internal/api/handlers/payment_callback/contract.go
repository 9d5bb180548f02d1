package payment_callback

import (
	"context"

	confirmPayment "github.com/sportshunt/turf-booking-service/internal/usecase/confirm_payment"
)

type ConfirmPaymentUseCase interface {
	Execute(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
