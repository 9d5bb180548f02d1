package create_booking

import (
	"errors"
	"net/http"

	"github.com/sportshunt/turf-booking-service/internal/api/handlers"
	"github.com/sportshunt/turf-booking-service/internal/api/middleware"
	createBooking "github.com/sportshunt/turf-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTurfNotFound       = "площадка или турф не найдены"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgPaymentGateway     = "платежный шлюз недоступен, попробуйте позже"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user identity")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		// Ошибки валидации возвращаются полным списком
		var validationErrs *createBooking.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.logger.Warn("POST /bookings - Validation failed: user_id=%d, errors=%v", userID, validationErrs.Errors)
			handlers.RespondValidationErrors(w, validationErrs.Errors)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrTurfNotFound):
			h.logger.Warn("POST /bookings - Turf not found: user_id=%d, venue_id=%d, turf_id=%d",
				userID, req.VenueID, req.TurfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, turf_id=%d, start=%s",
				userID, req.TurfID, req.StartDate)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrPaymentGateway):
			h.logger.Error("POST /bookings - Payment gateway unavailable: user_id=%d, turf_id=%d, error=%v",
				userID, req.TurfID, err)
			handlers.RespondBadGateway(w, msgPaymentGateway)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, turf_id=%d, error=%v",
				userID, req.TurfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, order_id=%s, user_id=%d, turf_id=%d",
		result.BookingID, result.OrderID, userID, req.TurfID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
