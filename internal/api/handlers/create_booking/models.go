package create_booking

import (
	"github.com/sportshunt/turf-booking-service/internal/domain"
	createBooking "github.com/sportshunt/turf-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID         int64  `json:"venueId"`
	TurfID          int64  `json:"turfId"`
	StartDate       string `json:"startDate"` // "2025-06-01T10:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// PaymentOrderResponse HTTP response model: заказ на оплату
// неподтвержденного бронирования
type PaymentOrderResponse struct {
	OrderID     string `json:"orderId"`
	BookingID   int64  `json:"bookingId"`
	Amount      int64  `json:"amount"` // в минорных единицах
	Currency    string `json:"currency"`
	CallbackURL string `json:"callbackUrl"`
	TurfName    string `json:"turfName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	TotalPrice  string `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата не парсится здесь: валидация use case собирает все ошибки полей разом.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:          userID,
		VenueID:         r.VenueID,
		TurfID:          r.TurfID,
		StartDate:       r.StartDate,
		DurationMinutes: r.DurationMinutes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *PaymentOrderResponse {
	return &PaymentOrderResponse{
		OrderID:     resp.OrderID,
		BookingID:   resp.BookingID,
		Amount:      resp.AmountMinor,
		Currency:    resp.Currency,
		CallbackURL: resp.CallbackURL,
		TurfName:    resp.TurfName,
		StartTime:   resp.StartTime.Format(domain.DateTimeFormat),
		EndTime:     resp.EndTime.Format(domain.DateTimeFormat),
		TotalPrice:  resp.TotalPrice.String(),
	}
}
