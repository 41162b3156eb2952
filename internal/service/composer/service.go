package composer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
)

// Catalog is the read-only lookup surface the composer needs. Missing ids are
// simply absent from the result.
type Catalog interface {
	FlightsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Flight, error)
	HotelsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Hotel, error)
	EntertainmentsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Entertainment, error)
}

type PackageStore interface {
	CreateCustomPackage(ctx context.Context, p *domain.CustomPackage) error
	GetCustomPackage(ctx context.Context, id uuid.UUID) (*domain.CustomPackage, error)
	DeleteCustomPackage(ctx context.Context, id uuid.UUID) error
}

// Service assembles custom packages. Composition never fails on incompatible
// candidates: items that cannot join the package are dropped with a warning
// and whatever remains is persisted.
type Service struct {
	catalog  Catalog
	packages PackageStore
}

func New(catalog Catalog, packages PackageStore) *Service {
	return &Service{catalog: catalog, packages: packages}
}

// Compose resolves the candidate ids, prunes incompatible items and persists
// the resulting package.
//
// Flights are chained greedily in departure-date order: the earliest flight
// starts the chain and each later flight joins only if its origin matches the
// chain's current destination (case-insensitive). A flight that breaks the
// chain is dropped with a warning, not retried in another order; the chain
// keeps chronological travel order, not maximal length.
//
// Hotels must match the final flight's destination when flights exist, and
// entertainments must match the first kept hotel's location when hotels
// exist. With no flights (or no hotels) the respective candidates pass
// through unfiltered.
func (s *Service) Compose(
	ctx context.Context,
	userID uuid.UUID,
	flightIDs, hotelIDs, entertainmentIDs []uuid.UUID,
) (*domain.CustomPackage, []string, error) {
	const op = "service.composer.Compose"

	warnings := []string{}

	chain, warns, err := s.buildFlightChain(ctx, flightIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("%s:%w", op, err)
	}
	warnings = append(warnings, warns...)

	hotels, warns, err := s.filterHotels(ctx, hotelIDs, chain)
	if err != nil {
		return nil, nil, fmt.Errorf("%s:%w", op, err)
	}
	warnings = append(warnings, warns...)

	ents, warns, err := s.filterEntertainments(ctx, entertainmentIDs, hotels)
	if err != nil {
		return nil, nil, fmt.Errorf("%s:%w", op, err)
	}
	warnings = append(warnings, warns...)

	pkg := &domain.CustomPackage{
		ID:     uuid.New(),
		UserID: userID,
	}
	for _, f := range chain {
		pkg.FlightIDs = append(pkg.FlightIDs, f.ID)
	}
	for _, h := range hotels {
		pkg.HotelIDs = append(pkg.HotelIDs, h.ID)
	}
	for _, e := range ents {
		pkg.EntertainmentIDs = append(pkg.EntertainmentIDs, e.ID)
	}

	if err := s.packages.CreateCustomPackage(ctx, pkg); err != nil {
		return nil, nil, fmt.Errorf("%s:%w", op, err)
	}

	return pkg, warnings, nil
}

func (s *Service) buildFlightChain(ctx context.Context, ids []uuid.UUID) ([]domain.Flight, []string, error) {
	if len(ids) == 0 {
		return nil, nil, nil
	}

	candidates, err := s.catalog.FlightsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	var warnings []string

	valid := candidates[:0:0]
	var soldOut []string
	for _, f := range candidates {
		if f.SeatsAvailable > 0 {
			valid = append(valid, f)
		} else {
			soldOut = append(soldOut, f.AirlineName)
		}
	}
	if len(soldOut) > 0 {
		warnings = append(warnings,
			"Removed flights with insufficient seats: "+strings.Join(soldOut, ", "))
	}

	if len(valid) == 0 {
		return nil, warnings, nil
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.Before(valid[j].Date)
	})

	chain := []domain.Flight{valid[0]}
	for _, curr := range valid[1:] {
		prev := chain[len(chain)-1]
		if strings.EqualFold(prev.Destination, curr.Origin) {
			chain = append(chain, curr)
			continue
		}
		warnings = append(warnings, fmt.Sprintf(
			"Removed flight %q because it does not chain from %q to %q",
			curr.AirlineName, prev.Destination, curr.Origin))
	}

	return chain, warnings, nil
}

func (s *Service) filterHotels(ctx context.Context, ids []uuid.UUID, chain []domain.Flight) ([]domain.Hotel, []string, error) {
	if len(ids) == 0 {
		return nil, nil, nil
	}

	candidates, err := s.catalog.HotelsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	if len(chain) == 0 {
		return candidates, nil, nil
	}

	dest := chain[len(chain)-1].Destination

	kept := candidates[:0:0]
	for _, h := range candidates {
		if strings.EqualFold(h.Location, dest) {
			kept = append(kept, h)
		}
	}

	var warnings []string
	if len(kept) == 0 && len(candidates) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Removed all hotels because none match the final flight destination %q", dest))
	}

	return kept, warnings, nil
}

func (s *Service) filterEntertainments(ctx context.Context, ids []uuid.UUID, hotels []domain.Hotel) ([]domain.Entertainment, []string, error) {
	if len(ids) == 0 {
		return nil, nil, nil
	}

	candidates, err := s.catalog.EntertainmentsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	if len(hotels) == 0 {
		return candidates, nil, nil
	}

	loc := hotels[0].Location

	kept := candidates[:0:0]
	for _, e := range candidates {
		if strings.EqualFold(e.Location, loc) {
			kept = append(kept, e)
		}
	}

	var warnings []string
	if len(kept) == 0 && len(candidates) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Removed all entertainments because none match hotel location %q", loc))
	}

	return kept, warnings, nil
}

// Get returns a stored package without resolving its items.
//
// Returns:
//   - error: composer.ErrPackageNotFound if the package does not exist.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.CustomPackage, error) {
	const op = "service.composer.Get"

	p, err := s.packages.GetCustomPackage(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrPackageNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return p, nil
}

// Delete removes a custom package. Bookings that already snapshotted the
// package's items are unaffected.
//
// Returns:
//   - error: composer.ErrPackageNotFound if the package does not exist.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "service.composer.Delete"

	if err := s.packages.DeleteCustomPackage(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s:%w", op, ErrPackageNotFound)
		}
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}
