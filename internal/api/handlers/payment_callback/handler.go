package payment_callback

import (
	"errors"
	"net/http"

	"github.com/sportshunt/turf-booking-service/internal/api/handlers"
	confirmPayment "github.com/sportshunt/turf-booking-service/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingParams      = "отсутствуют обязательные параметры платежа"
	msgInvalidSignature   = "некорректная подпись платежа"
	msgOrderNotFound      = "заказ не найден"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/callback
//
// Эндпоинт вызывается платежным шлюзом, а не пользователем,
// поэтому авторизация здесь - проверка подписи внутри use case.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PaymentCallbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/callback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrMissingParams):
			h.logger.Warn("POST /payments/callback - Missing params: order_id=%q", req.OrderID)
			handlers.RespondBadRequest(w, msgMissingParams)

		case errors.Is(err, confirmPayment.ErrInvalidSignature):
			h.logger.Warn("POST /payments/callback - Invalid signature: order_id=%s", req.OrderID)
			handlers.RespondBadRequest(w, msgInvalidSignature)

		case errors.Is(err, confirmPayment.ErrOrderNotFound):
			h.logger.Warn("POST /payments/callback - Order not found: order_id=%s", req.OrderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		default:
			h.logger.Error("POST /payments/callback - Failed to confirm payment: order_id=%s, error=%v",
				req.OrderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.AlreadyPaid {
		h.logger.Info("POST /payments/callback - Duplicate callback ignored: order_id=%s, booking_id=%d",
			result.OrderID, result.BookingID)
	} else {
		h.logger.Info("POST /payments/callback - Payment confirmed: order_id=%s, booking_id=%d",
			result.OrderID, result.BookingID)
	}
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
