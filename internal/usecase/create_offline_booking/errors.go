package create_offline_booking

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_offline_booking: invalid input data")

	// ErrTurfNotFound возвращается, когда турф не найден или не принадлежит площадке
	ErrTurfNotFound = errors.New("create_offline_booking: venue or turf does not exist")

	// ErrNotVenueHost возвращается, когда пользователь не является хостом площадки
	ErrNotVenueHost = errors.New("create_offline_booking: user is not the host of this venue")

	// ErrSlotNotAvailable возвращается при пересечении с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_offline_booking: the time slot overlaps with an existing booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_offline_booking: internal error")
)

// ValidationErrors список ошибок валидации входных данных
type ValidationErrors struct {
	Errors []string
}

func (e *ValidationErrors) Error() string {
	return "create_offline_booking: invalid input: " + strings.Join(e.Errors, "; ")
}

// Unwrap позволяет errors.Is(err, ErrInvalidInput)
func (e *ValidationErrors) Unwrap() error {
	return ErrInvalidInput
}
