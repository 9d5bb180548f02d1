package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sportshunt/turf-booking-service/internal/domain"
	"github.com/sportshunt/turf-booking-service/pkg/dbmetrics"
	"github.com/sportshunt/turf-booking-service/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

const orderColumns = "id, order_id, booking_id, user_id, amount_minor, currency, receipt, payment_id, signature, paid, created_at, updated_at"

// Repository репозиторий платежных заказов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает локальную запись заказа в состоянии pending
func (r *Repository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("orders").
		Columns("order_id", "booking_id", "user_id", "amount_minor", "currency", "receipt", "paid").
		Values(o.OrderID, o.BookingID, o.UserID, o.AmountMinor, o.Currency, o.Receipt, false).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateOrder
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return o, nil
}

// GetByOrderID получает заказ по идентификатору шлюза.
// Внутри транзакции добавляет FOR UPDATE: обработка callback'а должна
// удерживать строку заказа до конца транзакции, чтобы дубликат callback'а
// увидел уже выставленный флаг paid.
func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns).
		From("orders").
		Where(squirrel.Eq{"order_id": orderID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderID - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.Order
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID, &o.OrderID, &o.BookingID, &o.UserID, &o.AmountMinor,
		&o.Currency, &o.Receipt, &o.PaymentID, &o.Signature, &o.Paid,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderID - scan order: %v", ErrScanRow, err)
	}

	return &o, nil
}

// MarkPaid помечает заказ оплаченным и сохраняет платежные реквизиты
func (r *Repository) MarkPaid(ctx context.Context, id int64, paymentID, signature string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("paid", true).
		Set("payment_id", paymentID).
		Set("signature", signature).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
