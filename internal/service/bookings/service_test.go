package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportshunt/turf-booking-service/internal/domain"
	turfStorage "github.com/sportshunt/turf-booking-service/internal/infra/storage/turf"
	"github.com/sportshunt/turf-booking-service/pkg/ptr"
	"github.com/sportshunt/turf-booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockBookingRepo struct {
	bookings   []*domain.Booking
	gotFilter  domain.TurfBookingsFilter
	listErr    error
	userListID int64
}

func (m *mockBookingRepo) ListByTurf(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.gotFilter = filter
	return m.bookings, nil
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.userListID = userID
	return m.bookings, nil
}

type mockTurfRepo struct {
	turf *domain.Turf
	err  error
}

func (m *mockTurfRepo) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.turf, nil
}

type mockVenueRepo struct {
	venue *domain.Venue
	err   error
}

func (m *mockVenueRepo) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.venue, nil
}

func testBooking(id int64) *domain.Booking {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	return &domain.Booking{
		ID:         id,
		TurfID:     2,
		UserID:     7,
		StartTime:  start,
		EndTime:    start.Add(90 * time.Minute),
		TotalPrice: types.Money(75000),
		Verified:   true,
	}
}

func TestGetTurfBookings_Success(t *testing.T) {
	bookingRepo := &mockBookingRepo{bookings: []*domain.Booking{testBooking(1), testBooking(2)}}
	turfRepo := &mockTurfRepo{turf: &domain.Turf{ID: 2, VenueID: 1, Name: "Turf A"}}
	venueRepo := &mockVenueRepo{venue: &domain.Venue{ID: 1, HostID: 7}}

	svc := NewService(bookingRepo, turfRepo, venueRepo, nopLogger{})

	result, err := svc.GetTurfBookings(context.Background(), 2, 7, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.Bookings, 2)
	// Хосту показываются только подтвержденные бронирования
	assert.True(t, bookingRepo.gotFilter.OnlyVerified)
	assert.Equal(t, int64(2), bookingRepo.gotFilter.TurfID)
	assert.Nil(t, bookingRepo.gotFilter.From)
	assert.Nil(t, bookingRepo.gotFilter.To)
}

func TestGetTurfBookings_PeriodFilterPassedThrough(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	turfRepo := &mockTurfRepo{turf: &domain.Turf{ID: 2, VenueID: 1}}
	venueRepo := &mockVenueRepo{venue: &domain.Venue{ID: 1, HostID: 7}}

	svc := NewService(bookingRepo, turfRepo, venueRepo, nopLogger{})

	from := ptr.Ptr(time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local))
	to := ptr.Ptr(time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local))

	_, err := svc.GetTurfBookings(context.Background(), 2, 7, from, to)

	require.NoError(t, err)
	require.NotNil(t, bookingRepo.gotFilter.From)
	require.NotNil(t, bookingRepo.gotFilter.To)
	assert.Equal(t, *from, *bookingRepo.gotFilter.From)
	assert.Equal(t, *to, *bookingRepo.gotFilter.To)
}

func TestGetTurfBookings_TurfNotFound(t *testing.T) {
	turfRepo := &mockTurfRepo{err: turfStorage.ErrTurfNotFound}
	svc := NewService(&mockBookingRepo{}, turfRepo, &mockVenueRepo{}, nopLogger{})

	_, err := svc.GetTurfBookings(context.Background(), 99, 7, nil, nil)

	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestGetTurfBookings_AccessDenied(t *testing.T) {
	turfRepo := &mockTurfRepo{turf: &domain.Turf{ID: 2, VenueID: 1}}
	venueRepo := &mockVenueRepo{venue: &domain.Venue{ID: 1, HostID: 7}}
	svc := NewService(&mockBookingRepo{}, turfRepo, venueRepo, nopLogger{})

	// Чужой хост не видит бронирования турфа
	_, err := svc.GetTurfBookings(context.Background(), 2, 99, nil, nil)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_Success(t *testing.T) {
	bookingRepo := &mockBookingRepo{bookings: []*domain.Booking{testBooking(1)}}
	svc := NewService(bookingRepo, &mockTurfRepo{}, &mockVenueRepo{}, nopLogger{})

	result, err := svc.GetUserBookings(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, int64(7), bookingRepo.userListID)
	assert.Equal(t, "750.00", result.Bookings[0].TotalPrice)
}

func TestGetUserBookings_Empty(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, &mockTurfRepo{}, &mockVenueRepo{}, nopLogger{})

	result, err := svc.GetUserBookings(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.NotNil(t, result.Bookings)
}
