package create_venue

import (
	"context"

	"github.com/sportshunt/turf-booking-service/internal/service/venues/models"
)

type VenuesService interface {
	Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
