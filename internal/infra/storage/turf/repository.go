package turf

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

// Repository репозиторий турфов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория турфов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый турф.
// Нарушение уникальности (venue_id, name) маппится в ErrDuplicateName.
func (r *Repository) Create(ctx context.Context, t *domain.Turf) (*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("turfs").
		Columns("venue_id", "name", "price_per_hour").
		Values(t.VenueID, t.Name, t.PricePerHour).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// GetByID получает турф по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "venue_id", "name", "price_per_hour", "created_at", "updated_at").
		From("turfs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...))
}

// GetByIDAndVenue получает турф по ID с проверкой принадлежности площадке.
// Турф чужой площадки неотличим от несуществующего: ErrTurfNotFound.
func (r *Repository) GetByIDAndVenue(ctx context.Context, id, venueID int64) (*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "venue_id", "name", "price_per_hour", "created_at", "updated_at").
		From("turfs").
		Where(squirrel.Eq{"id": id, "venue_id": venueID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDAndVenue - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...))
}

// ListByVenueID получает все турфы площадки
func (r *Repository) ListByVenueID(ctx context.Context, venueID int64) ([]*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "venue_id", "name", "price_per_hour", "created_at", "updated_at").
		From("turfs").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenueID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenueID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTurfs(rows)
}

// ListByVenueIDs получает турфы сразу нескольких площадок (для страниц списка)
func (r *Repository) ListByVenueIDs(ctx context.Context, venueIDs []int64) ([]*domain.Turf, error) {
	if len(venueIDs) == 0 {
		return []*domain.Turf{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "venue_id", "name", "price_per_hour", "created_at", "updated_at").
		From("turfs").
		Where(squirrel.Eq{"venue_id": venueIDs}).
		OrderBy("venue_id ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenueIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenueIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTurfs(rows)
}

func (r *Repository) scanOne(row *sql.Row) (*domain.Turf, error) {
	var t domain.Turf
	err := row.Scan(&t.ID, &t.VenueID, &t.Name, &t.PricePerHour, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTurfNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan turf: %v", ErrScanRow, err)
	}
	return &t, nil
}

func (r *Repository) scanTurfs(rows *sql.Rows) ([]*domain.Turf, error) {
	turfs := make([]*domain.Turf, 0)
	for rows.Next() {
		var t domain.Turf
		if err := rows.Scan(&t.ID, &t.VenueID, &t.Name, &t.PricePerHour, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanTurfs - scan row: %v", ErrScanRow, err)
		}
		turfs = append(turfs, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTurfs - rows error: %v", ErrScanRow, err)
	}
	return turfs, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
