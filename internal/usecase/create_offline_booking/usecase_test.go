package create_offline_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportshunt/turf-booking-service/internal/domain"
	turfStorage "github.com/sportshunt/turf-booking-service/internal/infra/storage/turf"
	"github.com/sportshunt/turf-booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

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

type mockTurfRepo struct {
	turf *domain.Turf
	err  error
}

func (m *mockTurfRepo) GetByIDAndVenue(ctx context.Context, id, venueID int64) (*domain.Turf, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.turf, nil
}

type mockBookingRepo struct {
	overlapping    []*domain.Booking
	createErr      error
	createdBooking *domain.Booking
}

func (m *mockBookingRepo) GetOverlapping(ctx context.Context, turfID int64, start, end time.Time) ([]*domain.Booking, error) {
	return m.overlapping, nil
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.createdBooking = b
	created := *b
	created.ID = 301
	return &created, nil
}

type mockTxManager struct{}

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testFixtures(t *testing.T) (*mockVenueRepo, *mockTurfRepo) {
	t.Helper()
	price, err := types.ParseMoney("500.00")
	require.NoError(t, err)
	venueRepo := &mockVenueRepo{venue: &domain.Venue{ID: 1, Name: "Arena", HostID: 7}}
	turfRepo := &mockTurfRepo{turf: &domain.Turf{ID: 2, VenueID: 1, Name: "Turf A", PricePerHour: price}}
	return venueRepo, turfRepo
}

func validRequest() *Request {
	return &Request{
		HostID:          7,
		VenueID:         1,
		TurfID:          2,
		StartDate:       "2025-06-01T10:00",
		DurationMinutes: 90,
	}
}

func TestCreateOfflineBooking_Success(t *testing.T) {
	venueRepo, turfRepo := testFixtures(t)
	bookingRepo := &mockBookingRepo{}
	uc := NewUseCase(venueRepo, turfRepo, bookingRepo, mockTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(301), resp.BookingID)
	assert.Equal(t, "750.00", resp.TotalPrice.String())
	// Оффлайн-бронирование сразу подтверждено
	assert.True(t, resp.Verified)
	assert.True(t, resp.IsOffline)

	require.NotNil(t, bookingRepo.createdBooking)
	assert.True(t, bookingRepo.createdBooking.Verified)
	assert.True(t, bookingRepo.createdBooking.IsOffline)
	assert.Equal(t, int64(7), bookingRepo.createdBooking.UserID)
}

func TestCreateOfflineBooking_PastSlotAllowed(t *testing.T) {
	// Хост фиксирует уже сыгранное бронирование задним числом
	venueRepo, turfRepo := testFixtures(t)
	uc := NewUseCase(venueRepo, turfRepo, &mockBookingRepo{}, mockTxManager{}, nopLogger{})

	req := validRequest()
	req.StartDate = "2020-01-01T10:00"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Verified)
}

func TestCreateOfflineBooking_NotVenueHost(t *testing.T) {
	venueRepo, turfRepo := testFixtures(t)
	bookingRepo := &mockBookingRepo{}
	uc := NewUseCase(venueRepo, turfRepo, bookingRepo, mockTxManager{}, nopLogger{})

	req := validRequest()
	req.HostID = 99

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotVenueHost)
	assert.Nil(t, bookingRepo.createdBooking)
}

func TestCreateOfflineBooking_TurfNotFound(t *testing.T) {
	venueRepo, _ := testFixtures(t)
	turfRepo := &mockTurfRepo{err: turfStorage.ErrTurfNotFound}
	uc := NewUseCase(venueRepo, turfRepo, &mockBookingRepo{}, mockTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestCreateOfflineBooking_SlotOverlaps(t *testing.T) {
	venueRepo, turfRepo := testFixtures(t)
	bookingRepo := &mockBookingRepo{overlapping: []*domain.Booking{{ID: 55}}}
	uc := NewUseCase(venueRepo, turfRepo, bookingRepo, mockTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateOfflineBooking_ValidationErrors(t *testing.T) {
	venueRepo, turfRepo := testFixtures(t)
	uc := NewUseCase(venueRepo, turfRepo, &mockBookingRepo{}, mockTxManager{}, nopLogger{})

	req := &Request{HostID: 7, VenueID: 1, TurfID: 2, StartDate: "2025-06-01T10:15", DurationMinutes: 45}

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{
		"Duration must be at least 60 minutes and in increments of 30 minutes",
		"Start time minutes must be either 00 or 30",
	}, verrs.Errors)
}
