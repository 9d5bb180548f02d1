package paymentgateway

// CreateOrderRequest запрос на создание заказа в шлюзе.
// Сумма всегда в минорных единицах валюты (пайсы для INR).
type CreateOrderRequest struct {
	AmountMinor int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Receipt     string            `json:"receipt"`
	Notes       map[string]string `json:"notes,omitempty"`
}

// Order заказ, созданный шлюзом
type Order struct {
	OrderID     string `json:"id"`
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
	Status      string `json:"status"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
