package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
	postgres "github.com/okatsune/voyago/internal/repository/postgres"
	redisrepo "github.com/okatsune/voyago/internal/repository/redis"
)

type Config struct {
	CatalogTTL      time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

// Service serves the read side: catalog browsing and package listings.
// Single-item reads go through the cache; bookings invalidate the touched
// keys on every reservation change.
type Service struct {
	store *postgres.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgres.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.CatalogTTL <= 0 {
		cfg.CatalogTTL = 60 * time.Second
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 50
	}

	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 200
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

func (s *Service) page(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		return s.cfg.MaxPageSize
	}
	return limit
}

// GetFlight retrieves a flight by id through the cache.
//
// Returns:
//   - error: query.ErrFlightNotFound if the flight does not exist.
func (s *Service) GetFlight(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	const op = "service.query.GetFlight"

	f, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyFlight(id),
		s.cfg.CatalogTTL,
		func(ctx context.Context) (domain.Flight, error) {
			f, err := s.store.Catalog().GetFlight(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.Flight{}, ErrFlightNotFound
				}
				return domain.Flight{}, err
			}
			return *f, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &f, nil
}

func (s *Service) ListFlights(ctx context.Context, limit, offset int) ([]domain.Flight, error) {
	const op = "service.query.ListFlights"

	out, err := s.store.Catalog().ListFlights(ctx, s.page(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// GetHotel retrieves a hotel by id through the cache.
//
// Returns:
//   - error: query.ErrHotelNotFound if the hotel does not exist.
func (s *Service) GetHotel(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	const op = "service.query.GetHotel"

	h, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyHotel(id),
		s.cfg.CatalogTTL,
		func(ctx context.Context) (domain.Hotel, error) {
			h, err := s.store.Catalog().GetHotel(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.Hotel{}, ErrHotelNotFound
				}
				return domain.Hotel{}, err
			}
			return *h, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &h, nil
}

func (s *Service) ListHotels(ctx context.Context, limit, offset int) ([]domain.Hotel, error) {
	const op = "service.query.ListHotels"

	out, err := s.store.Catalog().ListHotels(ctx, s.page(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// GetEntertainment retrieves an entertainment by id through the cache.
//
// Returns:
//   - error: query.ErrEntertainmentNotFound if the entertainment does not exist.
func (s *Service) GetEntertainment(ctx context.Context, id uuid.UUID) (*domain.Entertainment, error) {
	const op = "service.query.GetEntertainment"

	e, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyEntertainment(id),
		s.cfg.CatalogTTL,
		func(ctx context.Context) (domain.Entertainment, error) {
			e, err := s.store.Catalog().GetEntertainment(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.Entertainment{}, ErrEntertainmentNotFound
				}
				return domain.Entertainment{}, err
			}
			return *e, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &e, nil
}

func (s *Service) ListEntertainments(ctx context.Context, limit, offset int) ([]domain.Entertainment, error) {
	const op = "service.query.ListEntertainments"

	out, err := s.store.Catalog().ListEntertainments(ctx, s.page(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// GetTourPackage retrieves a tour package by id through the cache.
//
// Returns:
//   - error: query.ErrTourPackageNotFound if the package does not exist.
func (s *Service) GetTourPackage(ctx context.Context, id uuid.UUID) (*domain.TourPackage, error) {
	const op = "service.query.GetTourPackage"

	tp, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyTourPackage(id),
		s.cfg.CatalogTTL,
		func(ctx context.Context) (domain.TourPackage, error) {
			tp, err := s.store.Catalog().GetTourPackage(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.TourPackage{}, ErrTourPackageNotFound
				}
				return domain.TourPackage{}, err
			}
			return *tp, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &tp, nil
}

func (s *Service) ListTourPackages(ctx context.Context, limit, offset int) ([]domain.TourPackage, error) {
	const op = "service.query.ListTourPackages"

	out, err := s.store.Catalog().ListTourPackages(ctx, s.page(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// GetCustomPackageItems retrieves a custom package with its items resolved
// against the catalog, preserving the stored flight order.
//
// Returns:
//   - error: query.ErrPackageNotFound if the package does not exist.
func (s *Service) GetCustomPackageItems(ctx context.Context, id uuid.UUID) (*domain.CustomPackageItems, error) {
	const op = "service.query.GetCustomPackageItems"

	p, err := s.store.Packages().GetCustomPackage(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrPackageNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	out, err := s.resolveItems(ctx, *p)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// ListCustomPackages retrieves a user's packages with their items resolved.
func (s *Service) ListCustomPackages(ctx context.Context, userID uuid.UUID) ([]domain.CustomPackageItems, error) {
	const op = "service.query.ListCustomPackages"

	pkgs, err := s.store.Packages().ListCustomPackagesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	out := make([]domain.CustomPackageItems, 0, len(pkgs))
	for _, p := range pkgs {
		items, err := s.resolveItems(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		out = append(out, *items)
	}

	return out, nil
}

func (s *Service) resolveItems(ctx context.Context, p domain.CustomPackage) (*domain.CustomPackageItems, error) {
	cat := s.store.Catalog()

	flights, err := cat.FlightsByIDs(ctx, p.FlightIDs)
	if err != nil {
		return nil, err
	}
	hotels, err := cat.HotelsByIDs(ctx, p.HotelIDs)
	if err != nil {
		return nil, err
	}
	ents, err := cat.EntertainmentsByIDs(ctx, p.EntertainmentIDs)
	if err != nil {
		return nil, err
	}

	return &domain.CustomPackageItems{
		CustomPackage:  p,
		Flights:        orderFlights(p.FlightIDs, flights),
		Hotels:         hotels,
		Entertainments: ents,
	}, nil
}

// orderFlights re-sorts fetched flights into the package's stored chain
// order; ANY-based fetches do not preserve input order.
func orderFlights(ids []uuid.UUID, flights []domain.Flight) []domain.Flight {
	byID := make(map[uuid.UUID]domain.Flight, len(flights))
	for _, f := range flights {
		byID[f.ID] = f
	}

	out := make([]domain.Flight, 0, len(flights))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			out = append(out, f)
		}
	}

	return out
}
