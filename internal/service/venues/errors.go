package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venues.service: venue not found")

	// ErrDuplicateVenueName возвращается при создании площадки с занятым именем
	ErrDuplicateVenueName = errors.New("venues.service: venue with this name already exists")

	// ErrDuplicateTurfName возвращается при создании турфа с занятым в площадке именем
	ErrDuplicateTurfName = errors.New("venues.service: turf with this name already exists in the venue")

	// ErrAccessDenied возвращается, когда хост управляет чужой площадкой
	ErrAccessDenied = errors.New("venues.service: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("venues.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("venues.service: internal error")
)
