package domain

// Business validation constants
const (
	// MinBookingDurationMinutes минимальная длительность бронирования
	MinBookingDurationMinutes = 60
	// SlotStepMinutes шаг сетки слотов: длительность кратна 30 минутам,
	// начало и конец выровнены по :00/:30
	SlotStepMinutes = 30

	MaxVenueNameLength = 100
	MaxTurfNameLength  = 100
)

// Time format constants
const (
	// DateTimeFormat формат времени начала бронирования в API: локальное
	// время без таймзоны, "2025-06-01T10:00"
	DateTimeFormat = "2006-01-02T15:04"
)

// Pagination defaults
const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// FeaturedVenuesLimit количество последних площадок в подборке новинок
	FeaturedVenuesLimit = 3
)
