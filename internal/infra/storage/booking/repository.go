package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sportshunt/turf-booking-service/internal/domain"
	"github.com/sportshunt/turf-booking-service/pkg/dbmetrics"
	"github.com/sportshunt/turf-booking-service/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

const bookingColumns = "id, turf_id, user_id, start_time, end_time, total_price, verified, is_offline, created_at, updated_at"

// Repository репозиторий бронирований
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Предполагается вызов внутри сериализуемой транзакции вместе с
// GetOverlapping: проверка пересечений и вставка должны быть атомарны.
// Уникальный индекс (turf_id, start_time, end_time) маппится в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("turf_id", "user_id", "start_time", "end_time", "total_price", "verified", "is_offline").
		Values(b.TurfID, b.UserID, b.StartTime, b.EndTime, b.TotalPrice, b.Verified, b.IsOffline).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID, &b.TurfID, &b.UserID, &b.StartTime, &b.EndTime,
		&b.TotalPrice, &b.Verified, &b.IsOffline, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return &b, nil
}

// GetOverlapping получает бронирования турфа, пересекающиеся с интервалом
// [start, end) по правилу полуоткрытых интервалов:
// existing.start < end AND existing.end > start.
// Учитываются и подтвержденные, и ожидающие оплату бронирования.
// Внутри транзакции добавляет FOR UPDATE, блокируя конкурирующие вставки.
func (r *Repository) GetOverlapping(ctx context.Context, turfID int64, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"turf_id": turfID}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListByTurf получает бронирования турфа с фильтрацией
func (r *Repository) ListByTurf(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"turf_id": filter.TurfID}).
		OrderBy("start_time DESC")

	if filter.OnlyVerified {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"verified": true})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.To})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTurf - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTurf - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListByUser получает подтвержденные бронирования пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID, "verified": true}).
		OrderBy("start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// MarkVerified помечает бронирование подтвержденным (после успешной оплаты)
func (r *Repository) MarkVerified(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("verified", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkVerified - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkVerified - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkVerified - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(
			&b.ID, &b.TurfID, &b.UserID, &b.StartTime, &b.EndTime,
			&b.TotalPrice, &b.Verified, &b.IsOffline, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
