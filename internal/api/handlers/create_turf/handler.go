package create_turf

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sportshunt/turf-booking-service/internal/api/handlers"
	"github.com/sportshunt/turf-booking-service/internal/api/middleware"
	"github.com/sportshunt/turf-booking-service/internal/service/venues"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVenueID     = "некорректный идентификатор площадки"
	msgInvalidInput       = "некорректные данные турфа"
	msgVenueNotFound      = "площадка не найдена"
	msgAccessDenied       = "управление чужой площадкой запрещено"
	msgDuplicateName      = "турф с таким названием уже существует на площадке"
)

type Handler struct {
	service VenuesService
	logger  Logger
}

func NewHandler(service VenuesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/turfs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user identity")
		return
	}

	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil || venueID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req CreateTurfRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/%d/turfs - Invalid request body: %v", venueID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateTurf(r.Context(), req.ToServiceRequest(hostID, venueID))
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("POST /venues/%d/turfs - Invalid input: host_id=%d, error=%v", venueID, hostID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("POST /venues/%d/turfs - Venue not found: host_id=%d", venueID, hostID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venues.ErrAccessDenied):
			h.logger.Warn("POST /venues/%d/turfs - Access denied: host_id=%d", venueID, hostID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, venues.ErrDuplicateTurfName):
			h.logger.Warn("POST /venues/%d/turfs - Duplicate name: host_id=%d, name=%q", venueID, hostID, req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		default:
			h.logger.Error("POST /venues/%d/turfs - Failed to create turf: host_id=%d, error=%v",
				venueID, hostID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/%d/turfs - Turf created: turf_id=%d, host_id=%d", venueID, result.ID, hostID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
