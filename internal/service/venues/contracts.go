package venues

import (
	"context"

	"github.com/sportshunt/turf-booking-service/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	Create(ctx context.Context, venue *domain.Venue) (*domain.Venue, error)
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context, filter domain.VenueListFilter) ([]*domain.Venue, error)
	ListFeatured(ctx context.Context, limit int) ([]*domain.Venue, error)
	Count(ctx context.Context, filter domain.VenueListFilter) (int64, error)
}

// TurfRepository интерфейс репозитория турфов
type TurfRepository interface {
	Create(ctx context.Context, turf *domain.Turf) (*domain.Turf, error)
	ListByVenueID(ctx context.Context, venueID int64) ([]*domain.Turf, error)
	ListByVenueIDs(ctx context.Context, venueIDs []int64) ([]*domain.Turf, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
