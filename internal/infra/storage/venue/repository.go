package venue

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

// Repository репозиторий площадок
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую площадку.
// Нарушение уникальности имени маппится в ErrDuplicateName.
func (r *Repository) Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("venues").
		Columns("name", "host_id").
		Values(v.Name, v.HostID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return v, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "host_id", "created_at", "updated_at").
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Venue
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID, &v.Name, &v.HostID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	return &v, nil
}

// List получает страницу площадок по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.VenueListFilter) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	offset := uint64((filter.Page - 1) * filter.PageSize)

	query, args, err := applyListFilter(
		psqlbuilder.Select("id", "name", "host_id", "created_at", "updated_at").From("venues"),
		filter,
	).
		OrderBy("id DESC").
		Limit(uint64(filter.PageSize)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.HostID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		venues = append(venues, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}

// ListFeatured получает limit последних добавленных площадок
func (r *Repository) ListFeatured(ctx context.Context, limit int) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "host_id", "created_at", "updated_at").
		From("venues").
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListFeatured - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFeatured - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0, limit)
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.HostID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListFeatured - scan row: %v", ErrScanRow, err)
		}
		venues = append(venues, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFeatured - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}

// Count возвращает количество площадок по тому же фильтру, что и List
func (r *Repository) Count(ctx context.Context, filter domain.VenueListFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyListFilter(psqlbuilder.Select("COUNT(*)").From("venues"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// ListByHostID получает все площадки хоста
func (r *Repository) ListByHostID(ctx context.Context, hostID int64) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "host_id", "created_at", "updated_at").
		From("venues").
		Where(squirrel.Eq{"host_id": hostID}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHostID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHostID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.HostID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByHostID - scan row: %v", ErrScanRow, err)
		}
		venues = append(venues, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByHostID - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}

// applyListFilter добавляет условия фильтра списка к запросу по venues.
// Ценовые границы проверяются по турфам площадки через EXISTS, чтобы
// не дублировать строки при нескольких подходящих турфах.
func applyListFilter(b squirrel.SelectBuilder, filter domain.VenueListFilter) squirrel.SelectBuilder {
	if filter.Name != "" {
		b = b.Where(squirrel.ILike{"name": "%" + filter.Name + "%"})
	}
	if filter.MinPrice != nil {
		b = b.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM turfs t WHERE t.venue_id = venues.id AND t.price_per_hour >= ?)",
			*filter.MinPrice,
		))
	}
	if filter.MaxPrice != nil {
		b = b.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM turfs t WHERE t.venue_id = venues.id AND t.price_per_hour <= ?)",
			*filter.MaxPrice,
		))
	}
	return b
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
