package create_offline_booking

import (
	"github.com/sportshunt/turf-booking-service/internal/domain"
	createOffline "github.com/sportshunt/turf-booking-service/internal/usecase/create_offline_booking"
)

// CreateOfflineBookingRequest HTTP request model
type CreateOfflineBookingRequest struct {
	VenueID         int64  `json:"venueId"`
	TurfID          int64  `json:"turfId"`
	StartDate       string `json:"startDate"` // "2025-06-01T10:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// OfflineBookingResponse HTTP response model
type OfflineBookingResponse struct {
	BookingID  int64  `json:"bookingId"`
	TurfID     int64  `json:"turfId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	TotalPrice string `json:"totalPrice"`
	Verified   bool   `json:"verified"`
	IsOffline  bool   `json:"isOffline"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateOfflineBookingRequest) ToUseCaseRequest(hostID int64) *createOffline.Request {
	return &createOffline.Request{
		HostID:          hostID,
		VenueID:         r.VenueID,
		TurfID:          r.TurfID,
		StartDate:       r.StartDate,
		DurationMinutes: r.DurationMinutes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOffline.Response) *OfflineBookingResponse {
	return &OfflineBookingResponse{
		BookingID:  resp.BookingID,
		TurfID:     resp.TurfID,
		StartTime:  resp.StartTime.Format(domain.DateTimeFormat),
		EndTime:    resp.EndTime.Format(domain.DateTimeFormat),
		TotalPrice: resp.TotalPrice.String(),
		Verified:   resp.Verified,
		IsOffline:  resp.IsOffline,
	}
}
