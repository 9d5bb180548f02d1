package confirm_payment

import "errors"

var (
	// ErrMissingParams возвращается при неполном callback'е
	// (нет order_id, payment_id или signature)
	ErrMissingParams = errors.New("confirm_payment: missing required payment parameters")

	// ErrOrderNotFound возвращается, когда заказ с таким order_id не существует
	ErrOrderNotFound = errors.New("confirm_payment: order does not exist")

	// ErrInvalidSignature возвращается при провале проверки подписи.
	// Состояние заказа и бронирования при этом не меняется.
	ErrInvalidSignature = errors.New("confirm_payment: invalid payment signature")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
