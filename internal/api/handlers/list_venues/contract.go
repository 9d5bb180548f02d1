package list_venues

import (
	"context"

	"github.com/sportshunt/turf-booking-service/internal/service/venues/models"
)

type VenuesService interface {
	List(ctx context.Context, req *models.ListVenuesRequest) (*models.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
