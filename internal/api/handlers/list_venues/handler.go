package list_venues

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sportshunt/turf-booking-service/internal/api/handlers"
	"github.com/sportshunt/turf-booking-service/internal/service/venues"
	"github.com/sportshunt/turf-booking-service/internal/service/venues/models"
)

const msgInvalidPrice = "некорректный формат ценовой границы, ожидается число вида 500.00"

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

// Handle GET /api/v1/venues?page=1&pageSize=10&name=arena&minPrice=300.00&maxPrice=700.00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Некорректные значения пагинации молча заменяются дефолтами в сервисе
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	req := &models.ListVenuesRequest{
		Page:     page,
		PageSize: pageSize,
		Name:     query.Get("name"),
		MinPrice: query.Get("minPrice"),
		MaxPrice: query.Get("maxPrice"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, venues.ErrInvalidInput) {
			h.logger.Warn("GET /venues - Invalid price filter: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidPrice)
			return
		}
		h.logger.Error("GET /venues - Failed to list venues: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues - Returned %d venues: page=%d", len(result.Venues), result.Page)
	handlers.RespondJSON(w, http.StatusOK, result)
}
