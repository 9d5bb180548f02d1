package create_venue

import (
	"github.com/sportshunt/turf-booking-service/internal/service/venues/models"
)

// CreateVenueRequest HTTP request model
type CreateVenueRequest struct {
	Name string `json:"name"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateVenueRequest) ToServiceRequest(hostID int64) *models.CreateVenueRequest {
	return &models.CreateVenueRequest{
		HostID: hostID,
		Name:   r.Name,
	}
}
