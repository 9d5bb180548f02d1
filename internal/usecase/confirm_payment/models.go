package confirm_payment

// Request параметры платежного callback'а от шлюза
type Request struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Response результат обработки callback'а
type Response struct {
	OrderID   string
	BookingID int64
	// AlreadyPaid true, если callback оказался дубликатом:
	// заказ уже был оплачен, состояние не менялось
	AlreadyPaid bool
}
