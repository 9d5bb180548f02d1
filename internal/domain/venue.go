package domain

import (
	"time"

	"github.com/sportshunt/turf-booking-service/pkg/types"
)

// Venue площадка хоста, содержит один или несколько турфов
type Venue struct {
	ID     int64
	Name   string
	HostID int64

	Turfs []*Turf

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy возвращает true, если площадка принадлежит указанному хосту
func (v *Venue) IsOwnedBy(hostID int64) bool {
	return v.HostID == hostID
}

// VenueListFilter фильтр для постраничного списка площадок.
// Name ищется по подстроке без учета регистра, ценовые границы
// применяются к стоимости часа у турфов площадки.
type VenueListFilter struct {
	Page     int // Номер страницы, начиная с 1
	PageSize int

	Name     string
	MinPrice *types.Money
	MaxPrice *types.Money
}
