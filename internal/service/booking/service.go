package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/okatsune/voyago/internal/domain"
	redisx "github.com/okatsune/voyago/internal/redis"
	"github.com/okatsune/voyago/internal/repository"
	redisrepo "github.com/okatsune/voyago/internal/repository/redis"
)

type Catalog interface {
	GetFlight(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
	GetHotel(ctx context.Context, id uuid.UUID) (*domain.Hotel, error)
	GetTourPackage(ctx context.Context, id uuid.UUID) (*domain.TourPackage, error)
	FlightsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Flight, error)
	HotelsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Hotel, error)
	EntertainmentsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Entertainment, error)
}

type Packages interface {
	GetCustomPackage(ctx context.Context, id uuid.UUID) (*domain.CustomPackage, error)
}

type Bookings interface {
	Insert(ctx context.Context, b *domain.Booking) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
	MarkCancelled(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

// Reserver claims and returns inventory. Reserve either takes the whole set
// or takes nothing.
type Reserver interface {
	Reserve(ctx context.Context, set domain.ItemSet) (domain.Reservation, error)
	Release(ctx context.Context, res domain.Reservation) error
}

type Ledger interface {
	AwardBookingPoints(ctx context.Context, userID, bookingID uuid.UUID, kind domain.BookingKind) (*domain.LoyaltyTransaction, error)
}

// Service runs the booking lifecycle: resolve the target, reserve inventory,
// persist, award points. Cancellation is the reverse, keyed off the
// reservation snapshot stored on the booking row.
type Service struct {
	catalog  Catalog
	packages Packages
	bookings Bookings
	reserver Reserver
	ledger   Ledger
	cache    *redisrepo.Cache
	pubsub   *redisx.BookingsPubSub
	logger   *slog.Logger
}

func New(
	catalog Catalog,
	packages Packages,
	bookings Bookings,
	reserver Reserver,
	ledger Ledger,
	cache *redisrepo.Cache,
	pubsub *redisx.BookingsPubSub,
	logger *slog.Logger,
) *Service {
	return &Service{
		catalog:  catalog,
		packages: packages,
		bookings: bookings,
		reserver: reserver,
		ledger:   ledger,
		cache:    cache,
		pubsub:   pubsub,
		logger:   logger,
	}
}

// CreateRequest targets exactly one of PackageID (tour or custom), HotelID or
// FlightID.
type CreateRequest struct {
	PackageID      *uuid.UUID
	HotelID        *uuid.UUID
	FlightID       *uuid.UUID
	Name           string
	NumberOfPeople int
	StartDate      time.Time
	Email          string
	DepartureCity  string
	Rooms          int
}

// Create reserves inventory for the requested target and persists the booking
// as Confirmed with the reservation snapshot attached. If the insert fails
// after the reserve succeeded, the reservation is released before returning.
//
// The loyalty award runs after the booking is durable and is deliberately
// best effort: a ledger failure is logged, not propagated, so a paid-for
// booking never disappears because points could not be written.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*domain.Booking, error) {
	const op = "service.booking.Create"

	b := &domain.Booking{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           req.Name,
		NumberOfPeople: req.NumberOfPeople,
		StartDate:      req.StartDate,
		Email:          req.Email,
		DepartureCity:  req.DepartureCity,
		Status:         domain.BookingConfirmed,
		RefundStatus:   domain.RefundNone,
	}

	set, err := s.resolveTarget(ctx, b, req)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	res, err := s.reserver.Reserve(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	b.Reservation = res

	if err := s.bookings.Insert(ctx, b); err != nil {
		if relErr := s.reserver.Release(ctx, res); relErr != nil {
			s.log().ErrorContext(ctx, "failed to release reservation after insert failure",
				"booking_id", b.ID, "error", relErr)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if _, err := s.ledger.AwardBookingPoints(ctx, userID, b.ID, b.Kind); err != nil {
		s.log().WarnContext(ctx, "loyalty award failed, booking kept",
			"booking_id", b.ID, "user_id", userID, "error", err)
	}

	s.notifyChanged(ctx, b)

	return b, nil
}

// Cancel flips the booking to Cancelled and releases its reserved inventory.
// The status flip is single-winner, so the release runs exactly once no
// matter how many cancels race. A failed release after the flip is logged:
// the cancellation itself is already durable at that point.
func (s *Service) Cancel(ctx context.Context, userID, id uuid.UUID) (*domain.Booking, error) {
	const op = "service.booking.Cancel"

	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	b, err := s.bookings.MarkCancelled(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("%s:%w", op, ErrBookingNotFound)
		case errors.Is(err, repository.ErrAlreadyCancelled):
			return nil, fmt.Errorf("%s:%w", op, ErrAlreadyCancelled)
		default:
			return nil, fmt.Errorf("%s:%w", op, err)
		}
	}

	if err := s.reserver.Release(ctx, b.Reservation); err != nil {
		s.log().ErrorContext(ctx, "failed to release inventory for cancelled booking",
			"booking_id", b.ID, "error", err)
	}

	s.notifyChanged(ctx, b)

	return b, nil
}

// Get returns a booking owned by userID. A booking belonging to someone else
// is reported as not found rather than forbidden, so ids cannot be probed.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Booking, error) {
	const op = "service.booking.Get"

	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if b.UserID != userID {
		return nil, fmt.Errorf("%s:%w", op, ErrBookingNotFound)
	}

	return b, nil
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	const op = "service.booking.ListByUser"

	out, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// resolveTarget fills the booking's kind, reference and price, and builds the
// item set to reserve. A PackageID is tried as a custom package first, then
// as a tour package.
func (s *Service) resolveTarget(ctx context.Context, b *domain.Booking, req CreateRequest) (domain.ItemSet, error) {
	switch {
	case req.HotelID != nil:
		h, err := s.catalog.GetHotel(ctx, *req.HotelID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.ItemSet{}, ErrHotelNotFound
			}
			return domain.ItemSet{}, err
		}

		rooms := req.Rooms
		if rooms <= 0 {
			rooms = 1
		}

		b.Kind = domain.BookingHotel
		b.HotelID = &h.ID
		b.TotalPrice = h.PricePerNight * float64(rooms)

		return domain.ItemSet{Hotels: []domain.Hotel{*h}, HotelRooms: rooms}, nil

	case req.FlightID != nil:
		f, err := s.catalog.GetFlight(ctx, *req.FlightID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.ItemSet{}, ErrFlightNotFound
			}
			return domain.ItemSet{}, err
		}

		b.Kind = domain.BookingFlight
		b.FlightID = &f.ID
		b.TotalPrice = f.Price

		return domain.ItemSet{Flights: []domain.Flight{*f}}, nil

	case req.PackageID != nil:
		return s.resolvePackage(ctx, b, *req.PackageID)

	default:
		return domain.ItemSet{}, ErrNoTarget
	}
}

func (s *Service) resolvePackage(ctx context.Context, b *domain.Booking, id uuid.UUID) (domain.ItemSet, error) {
	p, err := s.packages.GetCustomPackage(ctx, id)
	if err == nil {
		return s.resolveCustom(ctx, b, p)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return domain.ItemSet{}, err
	}

	tp, err := s.catalog.GetTourPackage(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ItemSet{}, ErrPackageNotFound
		}
		return domain.ItemSet{}, err
	}

	b.Kind = domain.BookingTour
	b.TourPackageID = &tp.ID
	b.TotalPrice = tp.Price

	return domain.ItemSet{TourPackageID: &tp.ID}, nil
}

func (s *Service) resolveCustom(ctx context.Context, b *domain.Booking, p *domain.CustomPackage) (domain.ItemSet, error) {
	flights, err := s.catalog.FlightsByIDs(ctx, p.FlightIDs)
	if err != nil {
		return domain.ItemSet{}, err
	}
	hotels, err := s.catalog.HotelsByIDs(ctx, p.HotelIDs)
	if err != nil {
		return domain.ItemSet{}, err
	}
	ents, err := s.catalog.EntertainmentsByIDs(ctx, p.EntertainmentIDs)
	if err != nil {
		return domain.ItemSet{}, err
	}

	var total float64
	for _, f := range flights {
		total += f.Price
	}
	for _, h := range hotels {
		total += h.PricePerNight
	}
	for _, e := range ents {
		total += e.Price
	}

	b.Kind = domain.BookingCustom
	b.CustomPackageID = &p.ID
	b.TotalPrice = total

	return domain.ItemSet{
		Flights:        flights,
		Hotels:         hotels,
		Entertainments: ents,
	}, nil
}

func (s *Service) notifyChanged(ctx context.Context, b *domain.Booking) {
	if s.cache != nil {
		var flights, hotels []uuid.UUID
		for _, f := range b.Reservation.Flights {
			flights = append(flights, f.ID)
		}
		for _, h := range b.Reservation.Hotels {
			hotels = append(hotels, h.ID)
		}
		if err := s.cache.InvalidateReservation(ctx, b.UserID,
			flights, hotels, b.Reservation.Entertainments, b.Reservation.TourPackageID); err != nil {
			s.log().WarnContext(ctx, "cache invalidation failed", "booking_id", b.ID, "error", err)
		}
	}

	if s.pubsub != nil {
		if err := s.pubsub.PublishBookingChanged(ctx, b.ID, b.UserID); err != nil {
			s.log().WarnContext(ctx, "booking change publish failed", "booking_id", b.ID, "error", err)
		}
	}
}

func (s *Service) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}
