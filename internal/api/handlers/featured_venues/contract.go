package featured_venues

import (
	"context"

	"github.com/sportshunt/turf-booking-service/internal/service/venues/models"
)

type VenuesService interface {
	ListFeatured(ctx context.Context) ([]*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
