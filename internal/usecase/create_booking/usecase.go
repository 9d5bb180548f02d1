package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/sportshunt/turf-booking-service/internal/domain"
	"github.com/sportshunt/turf-booking-service/internal/infra/storage/booking"
	turfRepo "github.com/sportshunt/turf-booking-service/internal/infra/storage/turf"
	gateway "github.com/sportshunt/turf-booking-service/internal/integrations/paymentgateway"
)

// Options параметры платежного потока из конфигурации
type Options struct {
	Currency    string // Единственный сконфигурированный код валюты
	CallbackURL string // Абсолютный URL callback'а для шлюза
}

// UseCase use case создания онлайн-бронирования.
// Поток: валидация -> проверка турфа -> предварительная проверка доступности ->
// создание заказа в шлюзе -> сериализуемая транзакция (повторная проверка
// пересечений c FOR UPDATE + вставка pending-бронирования + запись заказа).
type UseCase struct {
	turfRepo     TurfRepository
	bookingRepo  BookingRepository
	orderRepo    OrderRepository
	gateway      PaymentGateway
	txManager    TransactionManager
	timeProvider TimeProvider
	opts         Options
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	turfRepo TurfRepository,
	bookingRepo BookingRepository,
	orderRepo OrderRepository,
	gateway PaymentGateway,
	txManager TransactionManager,
	opts Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		turfRepo:     turfRepo,
		bookingRepo:  bookingRepo,
		orderRepo:    orderRepo,
		gateway:      gateway,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		opts:         opts,
		logger:       logger,
	}
}

// Execute выполняет use case создания онлайн-бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, venue=%d, turf=%d, start=%s, duration=%d",
		req.UserID, req.VenueID, req.TurfID, req.StartDate, req.DurationMinutes)

	now := uc.timeProvider.Now()

	// 1. Структурная валидация: все ошибки полей собираются разом
	requested, verrs := validateRequest(req, now)
	if verrs != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", verrs)
		return nil, verrs
	}

	// 2. Проверяем, что турф существует и принадлежит площадке
	turf, err := uc.turfRepo.GetByIDAndVenue(ctx, req.TurfID, req.VenueID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			uc.logger.Warn("CreateBooking: turf id=%d not found in venue id=%d", req.TurfID, req.VenueID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("CreateBooking: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	// 3. Предварительная проверка доступности. Это UX-оптимизация:
	// авторитетная проверка повторяется внутри транзакции перед вставкой.
	overlapping, err := uc.bookingRepo.GetOverlapping(ctx, turf.ID, requested.start, requested.end)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check availability: %v", err)
		return nil, fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
	}
	if len(overlapping) > 0 {
		uc.logger.Warn("CreateBooking: slot %s-%s on turf=%d overlaps %d booking(s)",
			requested.start.Format(domain.DateTimeFormat), requested.end.Format(domain.DateTimeFormat),
			turf.ID, len(overlapping))
		return nil, ErrSlotNotAvailable
	}

	// 4. Считаем стоимость: один раз, при создании; дальше не пересчитывается
	totalPrice := domain.TotalPriceFor(turf.PricePerHour, requested.start, requested.end)

	// 5. Создаем заказ в шлюзе до любых локальных записей:
	// при сбое после этого шага повторный callback все еще найдет заказ
	receipt := "booking_" + uuid.NewString()
	gwOrder, err := uc.gateway.CreateOrder(ctx, &gateway.CreateOrderRequest{
		AmountMinor: totalPrice.Minor(),
		Currency:    uc.opts.Currency,
		Receipt:     receipt,
		Notes: map[string]string{
			"turf_id":    strconv.FormatInt(turf.ID, 10),
			"start_time": requested.start.Format(domain.DateTimeFormat),
			"end_time":   requested.end.Format(domain.DateTimeFormat),
			"duration":   strconv.Itoa(requested.duration),
		},
	})
	if err != nil {
		if errors.Is(err, gateway.ErrGatewayUnavailable) {
			uc.logger.Error("CreateBooking: payment gateway unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
		}
		uc.logger.Error("CreateBooking: failed to create gateway order: %v", err)
		return nil, fmt.Errorf("%w: failed to create gateway order: %v", ErrInternal, err)
	}

	var (
		createdBooking *domain.Booking
		createdOrder   *domain.Order
	)

	// 6. Сериализуемая транзакция: повторная проверка инвариантов и вставка
	// атомарны относительно конкурирующих запросов на тот же турф
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Повторная проверка выравнивания и порядка на границе записи
		if !domain.IsSlotAligned(requested.start) || !domain.IsSlotAligned(requested.end) {
			return &ValidationErrors{Errors: []string{errStartNotAligned}}
		}
		if !requested.end.After(requested.start) {
			return &ValidationErrors{Errors: []string{errInvalidDuration}}
		}

		// 6.2. Повторная проверка пересечений с блокировкой FOR UPDATE
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, turf.ID, requested.start, requested.end)
		if err != nil {
			return fmt.Errorf("%w: failed to re-check availability: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			return ErrSlotNotAvailable
		}

		// 6.3. Pending-бронирование: verified выставится после оплаты
		b := &domain.Booking{
			TurfID:     turf.ID,
			UserID:     req.UserID,
			StartTime:  requested.start,
			EndTime:    requested.end,
			TotalPrice: totalPrice,
			Verified:   false,
			IsOffline:  false,
		}
		createdBooking, err = uc.bookingRepo.Create(txCtx, b)
		if err != nil {
			if errors.Is(err, booking.ErrSlotTaken) {
				// Уникальный индекс (turf_id, start_time, end_time) сработал
				// раньше нас: конкурент успел первым
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 6.4. Локальная запись заказа в состоянии pending
		createdOrder, err = uc.orderRepo.Create(txCtx, &domain.Order{
			OrderID:     gwOrder.OrderID,
			BookingID:   createdBooking.ID,
			UserID:      req.UserID,
			AmountMinor: totalPrice.Minor(),
			Currency:    uc.opts.Currency,
			Receipt:     receipt,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created pending booking id=%d, order=%s, amount=%d %s",
		createdBooking.ID, createdOrder.OrderID, createdOrder.AmountMinor, createdOrder.Currency)

	return &Response{
		OrderID:     createdOrder.OrderID,
		BookingID:   createdBooking.ID,
		AmountMinor: createdOrder.AmountMinor,
		Currency:    createdOrder.Currency,
		CallbackURL: uc.opts.CallbackURL,
		TurfName:    turf.Name,
		StartTime:   createdBooking.StartTime,
		EndTime:     createdBooking.EndTime,
		TotalPrice:  createdBooking.TotalPrice,
	}, nil
}
