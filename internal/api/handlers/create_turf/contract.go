package create_turf

import (
	"context"

	"github.com/sportshunt/turf-booking-service/internal/service/venues/models"
)

type VenuesService interface {
	CreateTurf(ctx context.Context, req *models.CreateTurfRequest) (*models.TurfResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
