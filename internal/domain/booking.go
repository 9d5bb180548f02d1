package domain

import (
	"time"

	"github.com/sportshunt/turf-booking-service/pkg/types"
)

// Booking занятый интервал времени [StartTime, EndTime) на турфе.
//
// Инварианты:
//   - начало и конец выровнены по границе :00 или :30;
//   - EndTime строго позже StartTime;
//   - два бронирования одного турфа не пересекаются
//     (existing.start < new.end AND existing.end > new.start);
//   - TotalPrice = PricePerHour * длительность в часах, считается один раз
//     при создании и дальше не пересчитывается;
//   - (turf_id, start_time, end_time) уникальны на уровне БД.
type Booking struct {
	ID         int64
	TurfID     int64
	UserID     int64
	StartTime  time.Time
	EndTime    time.Time
	TotalPrice types.Money

	// Verified бронирование подтверждено: оплата прошла проверку подписи
	// либо бронирование создано хостом оффлайн
	Verified bool
	// IsOffline бронирование создано хостом вне платежного потока
	IsOffline bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration возвращает длительность бронирования
func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// Overlaps возвращает true, если интервал [start, end) пересекается
// с интервалом бронирования по правилу полуоткрытых интервалов
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// TotalPriceFor считает итоговую стоимость интервала по почасовой ставке.
// Для длительностей, кратных 30 минутам, результат точный.
func TotalPriceFor(pricePerHour types.Money, start, end time.Time) types.Money {
	minutes := int(end.Sub(start) / time.Minute)
	return pricePerHour.PerMinutes(minutes)
}

// IsSlotAligned возвращает true, если момент времени лежит на границе
// :00 или :30 (секунды и наносекунды нулевые)
func IsSlotAligned(t time.Time) bool {
	if t.Second() != 0 || t.Nanosecond() != 0 {
		return false
	}
	return t.Minute() == 0 || t.Minute() == 30
}

// TurfBookingsFilter фильтр для получения бронирований турфа
type TurfBookingsFilter struct {
	TurfID       int64
	OnlyVerified bool       // Только подтвержденные бронирования
	From         *time.Time // Начало периода (опционально)
	To           *time.Time // Конец периода (опционально)
}
