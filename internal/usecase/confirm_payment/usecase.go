package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	gateway "github.com/sportshunt/turf-booking-service/internal/integrations/paymentgateway"
	orderRepo "github.com/sportshunt/turf-booking-service/internal/infra/storage/order"
)

// UseCase use case подтверждения оплаты по callback'у шлюза.
//
// Шлюз доставляет callback'и со семантикой at-least-once, поэтому обработка
// идемпотентна: строка заказа берется FOR UPDATE, и уже оплаченный заказ
// превращает повтор в no-op: второе бронирование не создается и состояние
// не меняется.
type UseCase struct {
	orderRepo   OrderRepository
	bookingRepo BookingRepository
	verifier    SignatureVerifier
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	bookingRepo BookingRepository,
	verifier SignatureVerifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:   orderRepo,
		bookingRepo: bookingRepo,
		verifier:    verifier,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case подтверждения оплаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: order=%s, payment=%s", req.OrderID, req.PaymentID)

	// 1. Все параметры callback'а обязательны
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		uc.logger.Warn("ConfirmPayment: missing parameters in callback")
		return nil, ErrMissingParams
	}

	// 2. Проверяем подпись до любых изменений состояния.
	// Провал подписи фатален для этого callback'а: заказ остается
	// неоплаченным, бронирование неподтвержденным.
	if err := uc.verifier.VerifySignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
		if errors.Is(err, gateway.ErrInvalidSignature) {
			uc.logger.Warn("ConfirmPayment: signature verification failed for order=%s", req.OrderID)
			return nil, ErrInvalidSignature
		}
		uc.logger.Error("ConfirmPayment: signature verification error for order=%s: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: signature verification: %v", ErrInternal, err)
	}

	var resp Response

	// 3. Переход pending -> paid в одной транзакции с подтверждением
	// бронирования; paid -> paid является no-op
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		order, err := uc.orderRepo.GetByOrderID(txCtx, req.OrderID)
		if err != nil {
			if errors.Is(err, orderRepo.ErrOrderNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("%w: failed to get order: %v", ErrInternal, err)
		}

		resp.OrderID = order.OrderID
		resp.BookingID = order.BookingID

		if order.Paid {
			// Дубликат callback'а: первый успех уже применен
			resp.AlreadyPaid = true
			return nil
		}

		if err := uc.orderRepo.MarkPaid(txCtx, order.ID, req.PaymentID, req.Signature); err != nil {
			return fmt.Errorf("%w: failed to mark order paid: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.MarkVerified(txCtx, order.BookingID); err != nil {
			return fmt.Errorf("%w: failed to verify booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			uc.logger.Warn("ConfirmPayment: order=%s does not exist", req.OrderID)
		} else {
			uc.logger.Error("ConfirmPayment: failed for order=%s: %v", req.OrderID, err)
		}
		return nil, err
	}

	if resp.AlreadyPaid {
		uc.logger.Info("ConfirmPayment: duplicate callback for order=%s, no-op", req.OrderID)
	} else {
		uc.logger.Info("ConfirmPayment: order=%s paid, booking id=%d verified", resp.OrderID, resp.BookingID)
	}

	return &resp, nil
}
