package models

import (
	"time"

	"github.com/sportshunt/turf-booking-service/internal/domain"
)

// BookingResponse модель бронирования для ответа API
type BookingResponse struct {
	ID         int64     `json:"id"`
	TurfID     int64     `json:"turfId"`
	UserID     int64     `json:"userId"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	TotalPrice string    `json:"totalPrice"`
	Verified   bool      `json:"verified"`
	IsOffline  bool      `json:"isOffline"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в модель ответа
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID,
		TurfID:     b.TurfID,
		UserID:     b.UserID,
		StartTime:  b.StartTime.Format(domain.DateTimeFormat),
		EndTime:    b.EndTime.Format(domain.DateTimeFormat),
		TotalPrice: b.TotalPrice.String(),
		Verified:   b.Verified,
		IsOffline:  b.IsOffline,
		CreatedAt:  b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в модель ответа
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
