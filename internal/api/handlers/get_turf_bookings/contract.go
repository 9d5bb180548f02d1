package get_turf_bookings

import (
	"context"
	"time"

	"github.com/sportshunt/turf-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetTurfBookings(ctx context.Context, turfID, hostID int64, from, to *time.Time) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
