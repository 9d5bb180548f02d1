package get_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sportshunt/turf-booking-service/internal/api/handlers"
	"github.com/sportshunt/turf-booking-service/internal/service/venues"
)

const (
	msgInvalidVenueID = "некорректный идентификатор площадки"
	msgVenueNotFound  = "площадка не найдена"
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

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil || venueID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result, err := h.service.GetByID(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("GET /venues/%d - Venue not found", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/%d - Failed to get venue: error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/%d - Venue returned with %d turfs", venueID, len(result.Turfs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
