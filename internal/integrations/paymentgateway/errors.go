package paymentgateway

import "errors"

var (
	// ErrGatewayUnavailable возвращается при таймауте или 5xx ответе шлюза.
	// Создание заказа можно безопасно повторить, подтверждение бронирования нельзя.
	ErrGatewayUnavailable = errors.New("paymentgateway client: gateway unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("paymentgateway client: invalid response")

	// ErrInvalidSignature возвращается, когда подпись callback'а не прошла проверку
	ErrInvalidSignature = errors.New("paymentgateway client: invalid payment signature")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgateway client: internal error")
)
