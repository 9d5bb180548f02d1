package create_booking

import (
	"context"
	"time"

	"github.com/sportshunt/turf-booking-service/internal/domain"
	"github.com/sportshunt/turf-booking-service/internal/integrations/paymentgateway"
)

// TurfRepository интерфейс репозитория турфов
type TurfRepository interface {
	GetByIDAndVenue(ctx context.Context, id, venueID int64) (*domain.Turf, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetOverlapping(ctx context.Context, turfID int64, start, end time.Time) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// OrderRepository интерфейс репозитория платежных заказов
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// PaymentGateway интерфейс клиента платежного шлюза
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req *paymentgateway.CreateOrderRequest) (*paymentgateway.Order, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
