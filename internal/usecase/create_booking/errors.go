package create_booking

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных.
	// Конкретные ошибки полей собираются в ValidationErrors.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrTurfNotFound возвращается, когда турф не найден или не принадлежит площадке
	ErrTurfNotFound = errors.New("create_booking: venue or turf does not exist")

	// ErrSlotNotAvailable возвращается, когда запрошенный интервал пересекается
	// с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: the selected time slot is not available")

	// ErrPaymentGateway возвращается при недоступности платежного шлюза.
	// Создание заказа можно повторить, локальное состояние не изменилось.
	ErrPaymentGateway = errors.New("create_booking: payment gateway unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationErrors список ошибок валидации входных данных.
// Независимые проверки полей собираются полностью, не прерываясь на первой.
type ValidationErrors struct {
	Errors []string
}

func (e *ValidationErrors) Error() string {
	return "create_booking: invalid input: " + strings.Join(e.Errors, "; ")
}

// Unwrap позволяет errors.Is(err, ErrInvalidInput)
func (e *ValidationErrors) Unwrap() error {
	return ErrInvalidInput
}
