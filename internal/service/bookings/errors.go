package bookings

import "errors"

var (
	// ErrTurfNotFound возвращается, когда турф не найден
	ErrTurfNotFound = errors.New("bookings.service: turf not found")

	// ErrAccessDenied возвращается, когда хост запрашивает бронирования чужого турфа
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
