package bookings

import (
	"context"

	"github.com/sportshunt/turf-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByTurf(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error)
}

// TurfRepository интерфейс репозитория турфов
type TurfRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
}

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
