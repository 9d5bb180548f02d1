package create_turf

import (
	"github.com/sportshunt/turf-booking-service/internal/service/venues/models"
)

// CreateTurfRequest HTTP request model
type CreateTurfRequest struct {
	Name         string `json:"name"`
	PricePerHour string `json:"pricePerHour"` // "500.00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTurfRequest) ToServiceRequest(hostID, venueID int64) *models.CreateTurfRequest {
	return &models.CreateTurfRequest{
		HostID:       hostID,
		VenueID:      venueID,
		Name:         r.Name,
		PricePerHour: r.PricePerHour,
	}
}
