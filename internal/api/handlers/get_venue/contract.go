package get_venue

import (
	"context"

	"github.com/sportshunt/turf-booking-service/internal/service/venues/models"
)

type VenuesService interface {
	GetByID(ctx context.Context, id int64) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
