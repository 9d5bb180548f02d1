package create_venue

import (
	"errors"
	"net/http"

	"github.com/sportshunt/turf-booking-service/internal/api/handlers"
	"github.com/sportshunt/turf-booking-service/internal/api/middleware"
	"github.com/sportshunt/turf-booking-service/internal/service/venues"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректное название площадки"
	msgDuplicateName      = "площадка с таким названием уже существует"
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

// Handle POST /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user identity")
		return
	}

	var req CreateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(hostID))
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("POST /venues - Invalid input: host_id=%d, error=%v", hostID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, venues.ErrDuplicateVenueName):
			h.logger.Warn("POST /venues - Duplicate name: host_id=%d, name=%q", hostID, req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		default:
			h.logger.Error("POST /venues - Failed to create venue: host_id=%d, error=%v", hostID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues - Venue created: venue_id=%d, host_id=%d", result.ID, hostID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
