package payment_callback

import (
	confirmPayment "github.com/sportshunt/turf-booking-service/internal/usecase/confirm_payment"
)

// PaymentCallbackRequest HTTP request model: callback платежного шлюза
type PaymentCallbackRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// PaymentCallbackResponse HTTP response model
type PaymentCallbackResponse struct {
	OrderID     string `json:"orderId"`
	BookingID   int64  `json:"bookingId"`
	Status      string `json:"status"`
	AlreadyPaid bool   `json:"alreadyPaid"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PaymentCallbackRequest) ToUseCaseRequest() *confirmPayment.Request {
	return &confirmPayment.Request{
		OrderID:   r.OrderID,
		PaymentID: r.PaymentID,
		Signature: r.Signature,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *PaymentCallbackResponse {
	return &PaymentCallbackResponse{
		OrderID:     resp.OrderID,
		BookingID:   resp.BookingID,
		Status:      "paid",
		AlreadyPaid: resp.AlreadyPaid,
	}
}
