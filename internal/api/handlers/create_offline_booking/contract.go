package create_offline_booking

import (
	"context"

	createOffline "github.com/sportshunt/turf-booking-service/internal/usecase/create_offline_booking"
)

type CreateOfflineBookingUseCase interface {
	Execute(ctx context.Context, req *createOffline.Request) (*createOffline.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
