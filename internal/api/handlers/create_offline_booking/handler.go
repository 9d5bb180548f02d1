package create_offline_booking

import (
	"errors"
	"net/http"

	"github.com/sportshunt/turf-booking-service/internal/api/handlers"
	"github.com/sportshunt/turf-booking-service/internal/api/middleware"
	createOffline "github.com/sportshunt/turf-booking-service/internal/usecase/create_offline_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTurfNotFound       = "площадка или турф не найдены"
	msgNotVenueHost       = "пользователь не является владельцем площадки"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
)

type Handler struct {
	useCase CreateOfflineBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateOfflineBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/offline-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user identity")
		return
	}

	var req CreateOfflineBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /offline-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(hostID))
	if err != nil {
		var validationErrs *createOffline.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.logger.Warn("POST /offline-bookings - Validation failed: host_id=%d, errors=%v",
				hostID, validationErrs.Errors)
			handlers.RespondValidationErrors(w, validationErrs.Errors)
			return
		}

		switch {
		case errors.Is(err, createOffline.ErrTurfNotFound):
			h.logger.Warn("POST /offline-bookings - Turf not found: host_id=%d, venue_id=%d, turf_id=%d",
				hostID, req.VenueID, req.TurfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, createOffline.ErrNotVenueHost):
			h.logger.Warn("POST /offline-bookings - Not venue host: host_id=%d, venue_id=%d",
				hostID, req.VenueID)
			handlers.RespondForbidden(w, msgNotVenueHost)

		case errors.Is(err, createOffline.ErrSlotNotAvailable):
			h.logger.Warn("POST /offline-bookings - Slot not available: host_id=%d, turf_id=%d, start=%s",
				hostID, req.TurfID, req.StartDate)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /offline-bookings - Failed to create booking: host_id=%d, turf_id=%d, error=%v",
				hostID, req.TurfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /offline-bookings - Offline booking created: booking_id=%d, host_id=%d, turf_id=%d",
		result.BookingID, hostID, req.TurfID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
