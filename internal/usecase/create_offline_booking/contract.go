package create_offline_booking

import (
	"context"
	"time"

	"github.com/sportshunt/turf-booking-service/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// TurfRepository интерфейс репозитория турфов
type TurfRepository interface {
	GetByIDAndVenue(ctx context.Context, id, venueID int64) (*domain.Turf, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetOverlapping(ctx context.Context, turfID int64, start, end time.Time) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
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
