package domain

import (
	"time"

	"github.com/sportshunt/turf-booking-service/pkg/types"
)

// Order транзакция платежного шлюза, привязанная к бронированию.
// Создается в состоянии pending вместе с неподтвержденным бронированием;
// переходит в paid только после успешной проверки подписи callback'а.
type Order struct {
	ID        int64
	OrderID   string // Идентификатор заказа на стороне шлюза
	BookingID int64
	UserID    int64

	AmountMinor int64 // Сумма в минорных единицах валюты (пайсы)
	Currency    string
	Receipt     string

	// Заполняются после оплаты
	PaymentID *string
	Signature *string
	Paid      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Amount возвращает сумму заказа как Money
func (o *Order) Amount() types.Money {
	return types.MoneyFromMinor(o.AmountMinor)
}
