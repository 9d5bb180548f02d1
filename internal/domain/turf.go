package domain

import (
	"time"

	"github.com/sportshunt/turf-booking-service/pkg/types"
)

// Turf бронируемая спортивная площадка внутри venue.
// Имя уникально в пределах venue.
type Turf struct {
	ID           int64
	VenueID      int64
	Name         string
	PricePerHour types.Money

	CreatedAt time.Time
	UpdatedAt time.Time
}
