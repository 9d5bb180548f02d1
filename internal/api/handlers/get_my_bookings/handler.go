package get_my_bookings

import (
	"net/http"

	"github.com/sportshunt/turf-booking-service/internal/api/handlers"
	"github.com/sportshunt/turf-booking-service/internal/api/middleware"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/my-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user identity")
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /my-bookings - Failed to get bookings: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /my-bookings - Returned %d bookings: user_id=%d", result.Total, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
