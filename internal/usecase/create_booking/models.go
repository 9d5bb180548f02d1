package create_booking

import (
	"time"

	"github.com/sportshunt/turf-booking-service/pkg/types"
)

// Request модель запроса на создание онлайн-бронирования.
// Поля приходят сырыми: валидация собирает все ошибки разом.
type Request struct {
	UserID          int64  // ID авторизованного пользователя
	VenueID         int64  // ID площадки
	TurfID          int64  // ID турфа
	StartDate       string // Локальное время начала без таймзоны, "2025-06-01T10:00"
	DurationMinutes int    // Длительность в минутах
}

// slot нормализованный результат валидации
type slot struct {
	start    time.Time
	end      time.Time
	duration int
}

// Response модель ответа: платежный заказ для неподтвержденного бронирования
type Response struct {
	OrderID     string      // Идентификатор заказа на стороне шлюза
	BookingID   int64       // ID созданного pending-бронирования
	AmountMinor int64       // Сумма к оплате в минорных единицах
	Currency    string      // Код валюты
	CallbackURL string      // Куда шлюз пришлет подтверждение оплаты
	TurfName    string      // Название турфа
	StartTime   time.Time   // Начало слота
	EndTime     time.Time   // Конец слота
	TotalPrice  types.Money // Итоговая стоимость
}
