package create_offline_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportshunt/turf-booking-service/internal/domain"
	bookingRepo "github.com/sportshunt/turf-booking-service/internal/infra/storage/booking"
	turfRepo "github.com/sportshunt/turf-booking-service/internal/infra/storage/turf"
	venueRepo "github.com/sportshunt/turf-booking-service/internal/infra/storage/venue"
)

// UseCase use case оффлайн-бронирования: хост фиксирует бронирование
// своего турфа в обход платежного потока. Правила слота и пересечений
// те же, что в онлайн-потоке; бронирование сразу verified и is_offline.
type UseCase struct {
	venueRepo   VenueRepository
	turfRepo    TurfRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	turfRepo TurfRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:   venueRepo,
		turfRepo:    turfRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case оффлайн-бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOfflineBooking: host=%d, venue=%d, turf=%d, start=%s, duration=%d",
		req.HostID, req.VenueID, req.TurfID, req.StartDate, req.DurationMinutes)

	// 1. Структурная валидация
	requested, verrs := validateRequest(req)
	if verrs != nil {
		uc.logger.Warn("CreateOfflineBooking: validation failed: %v", verrs)
		return nil, verrs
	}

	// 2. Проверяем, что турф существует и принадлежит площадке
	turf, err := uc.turfRepo.GetByIDAndVenue(ctx, req.TurfID, req.VenueID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			uc.logger.Warn("CreateOfflineBooking: turf id=%d not found in venue id=%d", req.TurfID, req.VenueID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("CreateOfflineBooking: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	// 3. Проверяем владение площадкой
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateOfflineBooking: venue id=%d not found", req.VenueID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("CreateOfflineBooking: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
	if !venue.IsOwnedBy(req.HostID) {
		uc.logger.Warn("CreateOfflineBooking: user=%d is not the host of venue=%d", req.HostID, req.VenueID)
		return nil, ErrNotVenueHost
	}

	totalPrice := domain.TotalPriceFor(turf.PricePerHour, requested.start, requested.end)

	var created *domain.Booking

	// 4. Проверка пересечений и вставка атомарны
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, turf.ID, requested.start, requested.end)
		if err != nil {
			return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			return ErrSlotNotAvailable
		}

		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			TurfID:     turf.ID,
			UserID:     req.HostID,
			StartTime:  requested.start,
			EndTime:    requested.end,
			TotalPrice: totalPrice,
			Verified:   true,
			IsOffline:  true,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateOfflineBooking: slot %s-%s on turf=%d not available",
				requested.start.Format(domain.DateTimeFormat), requested.end.Format(domain.DateTimeFormat), turf.ID)
		}
		return nil, err
	}

	uc.logger.Info("CreateOfflineBooking: created booking id=%d on turf=%d", created.ID, turf.ID)

	return &Response{
		BookingID:  created.ID,
		TurfID:     created.TurfID,
		StartTime:  created.StartTime,
		EndTime:    created.EndTime,
		TotalPrice: created.TotalPrice,
		Verified:   created.Verified,
		IsOffline:  created.IsOffline,
	}, nil
}
