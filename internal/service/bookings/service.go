package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sportshunt/turf-booking-service/internal/domain"
	turfRepo "github.com/sportshunt/turf-booking-service/internal/infra/storage/turf"
	"github.com/sportshunt/turf-booking-service/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	turfRepo    TurfRepository
	venueRepo   VenueRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	turfRepo TurfRepository,
	venueRepo VenueRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		turfRepo:    turfRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// GetTurfBookings получает подтвержденные бронирования турфа,
// опционально ограниченные периодом [from, to).
// Доступно только хосту площадки, которой принадлежит турф.
func (s *Service) GetTurfBookings(ctx context.Context, turfID, hostID int64, from, to *time.Time) (*models.BookingListResponse, error) {
	s.logger.Info("GetTurfBookings: turf=%d, host=%d", turfID, hostID)

	turf, err := s.turfRepo.GetByID(ctx, turfID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("GetTurfBookings: turf id=%d not found", turfID)
			return nil, ErrTurfNotFound
		}
		s.logger.Error("GetTurfBookings: failed to get turf id=%d: %v", turfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	venue, err := s.venueRepo.GetByID(ctx, turf.VenueID)
	if err != nil {
		s.logger.Error("GetTurfBookings: failed to get venue id=%d: %v", turf.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
	if !venue.IsOwnedBy(hostID) {
		s.logger.Warn("GetTurfBookings: user=%d is not the host of venue=%d", hostID, venue.ID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.ListByTurf(ctx, domain.TurfBookingsFilter{
		TurfID:       turfID,
		OnlyVerified: true,
		From:         from,
		To:           to,
	})
	if err != nil {
		s.logger.Error("GetTurfBookings: repository error for turf=%d: %v", turfID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTurfBookings: fetched %d bookings for turf=%d", len(bookings), turfID)
	return models.FromDomainBookingList(bookings), nil
}

// GetUserBookings получает подтвержденные бронирования пользователя, новые первыми
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: user=%d", userID)

	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}
