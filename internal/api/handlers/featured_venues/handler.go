package featured_venues

import (
	"net/http"

	"github.com/sportshunt/turf-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/venues/featured
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListFeatured(r.Context())
	if err != nil {
		h.logger.Error("GET /venues/featured - Failed to list featured venues: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues/featured - Returned %d venues", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
