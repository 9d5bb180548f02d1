package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sportshunt/turf-booking-service/internal/domain"
	turfRepo "github.com/sportshunt/turf-booking-service/internal/infra/storage/turf"
	venueRepo "github.com/sportshunt/turf-booking-service/internal/infra/storage/venue"
	"github.com/sportshunt/turf-booking-service/internal/service/venues/models"
	"github.com/sportshunt/turf-booking-service/pkg/types"
)

// Service сервис управления площадками и турфами
type Service struct {
	venueRepo VenueRepository
	turfRepo  TurfRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(venueRepo VenueRepository, turfRepo TurfRepository, logger Logger) *Service {
	return &Service{
		venueRepo: venueRepo,
		turfRepo:  turfRepo,
		logger:    logger,
	}
}

// List получает страницу площадок с вложенными турфами.
// Необязательные фильтры: подстрока имени и границы цены часа турфов.
func (s *Service) List(ctx context.Context, req *models.ListVenuesRequest) (*models.VenueListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > domain.MaxPageSize {
		pageSize = domain.DefaultPageSize
	}

	filter := domain.VenueListFilter{
		Page:     page,
		PageSize: pageSize,
		Name:     strings.TrimSpace(req.Name),
	}

	var err error
	if filter.MinPrice, err = parsePriceBound(req.MinPrice); err != nil {
		return nil, fmt.Errorf("%w: invalid minPrice", ErrInvalidInput)
	}
	if filter.MaxPrice, err = parsePriceBound(req.MaxPrice); err != nil {
		return nil, fmt.Errorf("%w: invalid maxPrice", ErrInvalidInput)
	}

	s.logger.Info("ListVenues: page=%d, pageSize=%d, name=%q", page, pageSize, filter.Name)

	venues, err := s.venueRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListVenues: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	total, err := s.venueRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("ListVenues: count error: %v", err)
		return nil, fmt.Errorf("%w: count error: %v", ErrInternal, err)
	}

	if err := s.attachTurfs(ctx, venues); err != nil {
		return nil, err
	}

	result := make([]*models.VenueResponse, 0, len(venues))
	for _, v := range venues {
		result = append(result, models.FromDomainVenue(v))
	}

	return &models.VenueListResponse{
		Venues:   result,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListFeatured получает последние добавленные площадки с вложенными турфами
func (s *Service) ListFeatured(ctx context.Context) ([]*models.VenueResponse, error) {
	venues, err := s.venueRepo.ListFeatured(ctx, domain.FeaturedVenuesLimit)
	if err != nil {
		s.logger.Error("FeaturedVenues: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if err := s.attachTurfs(ctx, venues); err != nil {
		return nil, err
	}

	result := make([]*models.VenueResponse, 0, len(venues))
	for _, v := range venues {
		result = append(result, models.FromDomainVenue(v))
	}
	return result, nil
}

// GetByID получает площадку с турфами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VenueResponse, error) {
	s.logger.Info("GetVenue: id=%d", id)

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetVenue: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetVenue: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	turfs, err := s.turfRepo.ListByVenueID(ctx, id)
	if err != nil {
		s.logger.Error("GetVenue: failed to list turfs for venue=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to list turfs: %v", ErrInternal, err)
	}
	venue.Turfs = turfs

	return models.FromDomainVenue(venue), nil
}

// Create создает новую площадку хоста
func (s *Service) Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: venue name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxVenueNameLength {
		return nil, fmt.Errorf("%w: venue name is too long", ErrInvalidInput)
	}

	s.logger.Info("CreateVenue: host=%d, name=%q", req.HostID, name)

	venue, err := s.venueRepo.Create(ctx, &domain.Venue{Name: name, HostID: req.HostID})
	if err != nil {
		if errors.Is(err, venueRepo.ErrDuplicateName) {
			s.logger.Warn("CreateVenue: name %q already exists", name)
			return nil, ErrDuplicateVenueName
		}
		s.logger.Error("CreateVenue: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateVenue: created venue id=%d", venue.ID)
	return models.FromDomainVenue(venue), nil
}

// CreateTurf создает турф на площадке хоста
func (s *Service) CreateTurf(ctx context.Context, req *models.CreateTurfRequest) (*models.TurfResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: turf name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxTurfNameLength {
		return nil, fmt.Errorf("%w: turf name is too long", ErrInvalidInput)
	}

	price, err := types.ParseMoney(req.PricePerHour)
	if err != nil || !price.IsPositive() {
		return nil, fmt.Errorf("%w: invalid price per hour", ErrInvalidInput)
	}

	s.logger.Info("CreateTurf: host=%d, venue=%d, name=%q, price=%s", req.HostID, req.VenueID, name, price)

	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("CreateTurf: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("CreateTurf: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
	if !venue.IsOwnedBy(req.HostID) {
		s.logger.Warn("CreateTurf: user=%d is not the host of venue=%d", req.HostID, req.VenueID)
		return nil, ErrAccessDenied
	}

	turf, err := s.turfRepo.Create(ctx, &domain.Turf{
		VenueID:      req.VenueID,
		Name:         name,
		PricePerHour: price,
	})
	if err != nil {
		if errors.Is(err, turfRepo.ErrDuplicateName) {
			s.logger.Warn("CreateTurf: name %q already exists in venue=%d", name, req.VenueID)
			return nil, ErrDuplicateTurfName
		}
		s.logger.Error("CreateTurf: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTurf: created turf id=%d in venue=%d", turf.ID, req.VenueID)
	return models.FromDomainTurf(turf), nil
}

// parsePriceBound разбирает необязательную ценовую границу фильтра,
// пустая строка означает отсутствие границы
func parsePriceBound(s string) (*types.Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	price, err := types.ParseMoney(s)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// attachTurfs подгружает турфы для списка площадок одним запросом
func (s *Service) attachTurfs(ctx context.Context, venues []*domain.Venue) error {
	if len(venues) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
	}

	turfs, err := s.turfRepo.ListByVenueIDs(ctx, ids)
	if err != nil {
		s.logger.Error("ListVenues: failed to list turfs: %v", err)
		return fmt.Errorf("%w: failed to list turfs: %v", ErrInternal, err)
	}

	byVenue := make(map[int64][]*domain.Turf, len(venues))
	for _, t := range turfs {
		byVenue[t.VenueID] = append(byVenue[t.VenueID], t)
	}
	for _, v := range venues {
		if ts, ok := byVenue[v.ID]; ok {
			v.Turfs = ts
		} else {
			v.Turfs = []*domain.Turf{}
		}
	}

	return nil
}
