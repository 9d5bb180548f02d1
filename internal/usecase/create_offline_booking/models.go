package create_offline_booking

import (
	"time"

	"github.com/sportshunt/turf-booking-service/pkg/types"
)

// Request модель запроса хоста на оффлайн-бронирование
type Request struct {
	HostID          int64  // ID авторизованного хоста
	VenueID         int64  // ID площадки
	TurfID          int64  // ID турфа
	StartDate       string // Локальное время начала, "2025-06-01T10:00"
	DurationMinutes int    // Длительность в минутах
}

// slot нормализованный результат валидации
type slot struct {
	start time.Time
	end   time.Time
}

// Response созданное оффлайн-бронирование
type Response struct {
	BookingID  int64
	TurfID     int64
	StartTime  time.Time
	EndTime    time.Time
	TotalPrice types.Money
	Verified   bool
	IsOffline  bool
}
