package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportshunt/turf-booking-service/internal/domain"
	bookingStorage "github.com/sportshunt/turf-booking-service/internal/infra/storage/booking"
	turfStorage "github.com/sportshunt/turf-booking-service/internal/infra/storage/turf"
	gateway "github.com/sportshunt/turf-booking-service/internal/integrations/paymentgateway"
	"github.com/sportshunt/turf-booking-service/pkg/types"
)

// --- моки контрактов ---

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

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
	overlappingTx  []*domain.Booking
	overlapCalls   int
	created        *domain.Booking
	createErr      error
	createdBooking *domain.Booking
}

func (m *mockBookingRepo) GetOverlapping(ctx context.Context, turfID int64, start, end time.Time) ([]*domain.Booking, error) {
	m.overlapCalls++
	// Первый вызов - предварительная проверка, второй - внутри транзакции
	if m.overlapCalls > 1 {
		return m.overlappingTx, nil
	}
	return m.overlapping, nil
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.createdBooking = b
	created := *b
	created.ID = 101
	return &created, nil
}

type mockOrderRepo struct {
	createErr    error
	createdOrder *domain.Order
}

func (m *mockOrderRepo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.createdOrder = o
	created := *o
	created.ID = 201
	return &created, nil
}

type mockGateway struct {
	order *gateway.Order
	err   error
	calls int
}

func (m *mockGateway) CreateOrder(ctx context.Context, req *gateway.CreateOrderRequest) (*gateway.Order, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

// mockTxManager выполняет функцию напрямую, без реальной транзакции
type mockTxManager struct{}

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- фикстуры ---

func testTurf(t *testing.T) *domain.Turf {
	t.Helper()
	price, err := types.ParseMoney("500.00")
	require.NoError(t, err)
	return &domain.Turf{
		ID:           2,
		VenueID:      1,
		Name:         "Turf A",
		PricePerHour: price,
	}
}

func newTestUseCase(
	turfRepo *mockTurfRepo,
	bookingRepo *mockBookingRepo,
	orderRepo *mockOrderRepo,
	gw *mockGateway,
	now time.Time,
) *UseCase {
	uc := NewUseCase(turfRepo, bookingRepo, orderRepo, gw, mockTxManager{},
		Options{Currency: "INR", CallbackURL: "http://localhost:8080/api/v1/payments/callback"},
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:          7,
		VenueID:         1,
		TurfID:          2,
		StartDate:       "2025-06-01T10:00",
		DurationMinutes: 90,
	}
}

// --- тесты ---

func TestCreateBooking_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	turfRepo := &mockTurfRepo{turf: testTurf(t)}
	bookingRepo := &mockBookingRepo{}
	orderRepo := &mockOrderRepo{}
	gw := &mockGateway{order: &gateway.Order{OrderID: "order_abc", AmountMinor: 75000, Currency: "INR"}}

	uc := newTestUseCase(turfRepo, bookingRepo, orderRepo, gw, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "order_abc", resp.OrderID)
	assert.Equal(t, int64(101), resp.BookingID)
	// 90 минут по 500.00/час = 750.00 ровно
	assert.Equal(t, int64(75000), resp.AmountMinor)
	assert.Equal(t, "750.00", resp.TotalPrice.String())
	assert.Equal(t, "INR", resp.Currency)
	assert.Equal(t, "Turf A", resp.TurfName)

	// Бронирование создано неподтвержденным и онлайн
	require.NotNil(t, bookingRepo.createdBooking)
	assert.False(t, bookingRepo.createdBooking.Verified)
	assert.False(t, bookingRepo.createdBooking.IsOffline)
	assert.Equal(t, int64(7), bookingRepo.createdBooking.UserID)

	// Заказ привязан к бронированию и ждет оплаты
	require.NotNil(t, orderRepo.createdOrder)
	assert.Equal(t, "order_abc", orderRepo.createdOrder.OrderID)
	assert.Equal(t, int64(101), orderRepo.createdOrder.BookingID)
	assert.Equal(t, int64(75000), orderRepo.createdOrder.AmountMinor)
	assert.NotEmpty(t, orderRepo.createdOrder.Receipt)

	// Доступность проверена дважды: до шлюза и внутри транзакции
	assert.Equal(t, 2, bookingRepo.overlapCalls)
}

func TestCreateBooking_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&mockTurfRepo{}, &mockBookingRepo{}, &mockOrderRepo{}, &mockGateway{},
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), &Request{UserID: 7})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Errors, "Missing venue ID")
	assert.Contains(t, verrs.Errors, "Missing turf ID")
	assert.Contains(t, verrs.Errors, "Missing start time")
	assert.Contains(t, verrs.Errors, "Missing duration")
}

func TestCreateBooking_TurfNotFound(t *testing.T) {
	turfRepo := &mockTurfRepo{err: turfStorage.ErrTurfNotFound}
	gw := &mockGateway{}
	uc := newTestUseCase(turfRepo, &mockBookingRepo{}, &mockOrderRepo{}, gw,
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTurfNotFound)
	assert.Zero(t, gw.calls)
}

func TestCreateBooking_SlotOverlapsOnPrecheck(t *testing.T) {
	existing := &domain.Booking{ID: 55}
	bookingRepo := &mockBookingRepo{overlapping: []*domain.Booking{existing}}
	gw := &mockGateway{}
	uc := newTestUseCase(&mockTurfRepo{turf: testTurf(t)}, bookingRepo, &mockOrderRepo{}, gw,
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	// До платежного шлюза дело не дошло
	assert.Zero(t, gw.calls)
}

func TestCreateBooking_SlotTakenInsideTransaction(t *testing.T) {
	// Предварительная проверка чистая, но конкурент успел до FOR UPDATE
	bookingRepo := &mockBookingRepo{overlappingTx: []*domain.Booking{{ID: 55}}}
	gw := &mockGateway{order: &gateway.Order{OrderID: "order_abc"}}
	uc := newTestUseCase(&mockTurfRepo{turf: testTurf(t)}, bookingRepo, &mockOrderRepo{}, gw,
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 2, bookingRepo.overlapCalls)
}

func TestCreateBooking_UniqueConstraintMapsToSlotNotAvailable(t *testing.T) {
	bookingRepo := &mockBookingRepo{createErr: bookingStorage.ErrSlotTaken}
	gw := &mockGateway{order: &gateway.Order{OrderID: "order_abc"}}
	uc := newTestUseCase(&mockTurfRepo{turf: testTurf(t)}, bookingRepo, &mockOrderRepo{}, gw,
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_GatewayUnavailable(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	gw := &mockGateway{err: gateway.ErrGatewayUnavailable}
	uc := newTestUseCase(&mockTurfRepo{turf: testTurf(t)}, bookingRepo, &mockOrderRepo{}, gw,
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPaymentGateway)
	// Локальные записи не создавались: шлюз упал до транзакции
	assert.Nil(t, bookingRepo.createdBooking)
	assert.Equal(t, 1, bookingRepo.overlapCalls)
}
