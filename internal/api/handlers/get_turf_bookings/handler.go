package get_turf_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/sportshunt/turf-booking-service/internal/api/handlers"
	"github.com/sportshunt/turf-booking-service/internal/api/middleware"
	"github.com/sportshunt/turf-booking-service/internal/domain"
	"github.com/sportshunt/turf-booking-service/internal/service/bookings"
	"github.com/sportshunt/turf-booking-service/pkg/ptr"
)

const (
	msgInvalidTurfID = "некорректный идентификатор турфа"
	msgInvalidPeriod = "некорректный формат границы периода, ожидается YYYY-MM-DDTHH:MM"
	msgTurfNotFound  = "турф не найден"
	msgAccessDenied  = "доступ к бронированиям чужого турфа запрещен"
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

// Handle GET /api/v1/turfs/{turfId}/bookings?from=2025-06-01T00:00&to=2025-07-01T00:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user identity")
		return
	}

	turfID, err := strconv.ParseInt(mux.Vars(r)["turfId"], 10, 64)
	if err != nil || turfID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	from, err := parsePeriodBound(r.URL.Query().Get("from"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	to, err := parsePeriodBound(r.URL.Query().Get("to"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.GetTurfBookings(r.Context(), turfID, hostID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/%d/bookings - Turf not found: host_id=%d", turfID, hostID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /turfs/%d/bookings - Access denied: host_id=%d", turfID, hostID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /turfs/%d/bookings - Failed to get bookings: host_id=%d, error=%v",
				turfID, hostID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turfs/%d/bookings - Returned %d bookings: host_id=%d", turfID, result.Total, hostID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parsePeriodBound парсит опциональную границу периода из query-параметра
func parsePeriodBound(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(domain.DateTimeFormat, raw, time.Local)
	if err != nil {
		return nil, err
	}
	return ptr.Ptr(parsed), nil
}
