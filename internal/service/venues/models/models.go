package models

import "github.com/sportshunt/turf-booking-service/internal/domain"

// TurfResponse модель турфа для ответа API
type TurfResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PricePerHour string `json:"pricePerHour"`
}

// VenueResponse модель площадки с вложенными турфами
type VenueResponse struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	HostID int64           `json:"hostId"`
	Turfs  []*TurfResponse `json:"turfs"`
}

// VenueListResponse страница списка площадок
type VenueListResponse struct {
	Venues   []*VenueResponse `json:"venues"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// ListVenuesRequest параметры списка площадок: пагинация и
// необязательные фильтры по имени и цене часа турфов
type ListVenuesRequest struct {
	Page     int
	PageSize int
	Name     string
	MinPrice string // "300.00", пустая строка без фильтра
	MaxPrice string
}

// CreateVenueRequest запрос на создание площадки
type CreateVenueRequest struct {
	HostID int64
	Name   string
}

// CreateTurfRequest запрос на создание турфа
type CreateTurfRequest struct {
	HostID       int64
	VenueID      int64
	Name         string
	PricePerHour string // "500.00"
}

// FromDomainTurf конвертирует domain.Turf в модель ответа
func FromDomainTurf(t *domain.Turf) *TurfResponse {
	return &TurfResponse{
		ID:           t.ID,
		Name:         t.Name,
		PricePerHour: t.PricePerHour.String(),
	}
}

// FromDomainVenue конвертирует domain.Venue с турфами в модель ответа
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	turfs := make([]*TurfResponse, 0, len(v.Turfs))
	for _, t := range v.Turfs {
		turfs = append(turfs, FromDomainTurf(t))
	}
	return &VenueResponse{
		ID:     v.ID,
		Name:   v.Name,
		HostID: v.HostID,
		Turfs:  turfs,
	}
}
