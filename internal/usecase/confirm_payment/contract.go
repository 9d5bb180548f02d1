package confirm_payment

import (
	"context"

	"github.com/sportshunt/turf-booking-service/internal/domain"
)

// OrderRepository интерфейс репозитория платежных заказов
type OrderRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
	MarkPaid(ctx context.Context, id int64, paymentID, signature string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	MarkVerified(ctx context.Context, id int64) error
}

// SignatureVerifier проверка подписи callback'а (реализуется клиентом шлюза)
type SignatureVerifier interface {
	VerifySignature(orderID, paymentID, signature string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
