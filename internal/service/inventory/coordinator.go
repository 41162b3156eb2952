package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
)

// Counters is the availability-mutation surface the coordinator drives. Every
// take is conditional and atomic per resource; restores are unconditional.
type Counters interface {
	TakeFlightSeats(ctx context.Context, id uuid.UUID, units float64) error
	RestoreFlightSeats(ctx context.Context, id uuid.UUID, units float64) error
	TakeHotelRooms(ctx context.Context, id uuid.UUID, rooms int) error
	RestoreHotelRooms(ctx context.Context, id uuid.UUID, rooms int) error
	TakeTourSlot(ctx context.Context, id uuid.UUID) error
	RestoreTourSlot(ctx context.Context, id uuid.UUID) error
	MarkEntertainmentBooked(ctx context.Context, id uuid.UUID) error
	MarkEntertainmentAvailable(ctx context.Context, id uuid.UUID) error
}

// Coordinator reserves and releases inventory for bookings. Reserve is not a
// database transaction: each item is claimed with its own conditional update,
// and a failure part way through rolls back the items already claimed before
// the error is returned. The returned Reservation lists exactly what was
// taken, and Release restores exactly that, so the pair conserves counters
// even when callers race or a claim fails mid-set.
type Coordinator struct {
	counters Counters
}

func NewCoordinator(counters Counters) *Coordinator {
	return &Coordinator{counters: counters}
}

// Reserve claims every item in the set. On any shortfall it restores the
// items already claimed and returns an UnavailableError naming the item that
// ran out.
func (c *Coordinator) Reserve(ctx context.Context, set domain.ItemSet) (domain.Reservation, error) {
	const op = "service.inventory.Reserve"

	var res domain.Reservation

	fail := func(kind, name string, err error) (domain.Reservation, error) {
		relErr := c.Release(ctx, res)

		if isShortfall(err) {
			err = &UnavailableError{Kind: kind, Name: name}
		}
		if relErr != nil {
			err = errors.Join(err, relErr)
		}

		return domain.Reservation{}, fmt.Errorf("%s:%w", op, err)
	}

	for _, f := range set.Flights {
		if err := c.counters.TakeFlightSeats(ctx, f.ID, domain.FlightSeatUnit); err != nil {
			return fail("flight", f.AirlineName, err)
		}
		res.Flights = append(res.Flights, domain.ReservedFlight{
			ID:    f.ID,
			Units: domain.FlightSeatUnit,
		})
	}

	rooms := set.HotelRooms
	if rooms <= 0 {
		rooms = 1
	}
	for _, h := range set.Hotels {
		if err := c.counters.TakeHotelRooms(ctx, h.ID, rooms); err != nil {
			return fail("hotel", h.HotelName, err)
		}
		res.Hotels = append(res.Hotels, domain.ReservedHotel{
			ID:    h.ID,
			Rooms: rooms,
		})
	}

	for _, e := range set.Entertainments {
		if err := c.counters.MarkEntertainmentBooked(ctx, e.ID); err != nil {
			return fail("entertainment", e.Name, err)
		}
		res.Entertainments = append(res.Entertainments, e.ID)
	}

	if set.TourPackageID != nil {
		if err := c.counters.TakeTourSlot(ctx, *set.TourPackageID); err != nil {
			return fail("tour package", "", err)
		}
		res.TourPackageID = set.TourPackageID
	}

	return res, nil
}

// Release restores everything the reservation lists. It keeps going past
// individual failures so one broken restore does not strand the rest, and
// returns the failures joined.
func (c *Coordinator) Release(ctx context.Context, res domain.Reservation) error {
	const op = "service.inventory.Release"

	var errs []error

	for _, f := range res.Flights {
		if err := c.counters.RestoreFlightSeats(ctx, f.ID, f.Units); err != nil {
			errs = append(errs, err)
		}
	}
	for _, h := range res.Hotels {
		if err := c.counters.RestoreHotelRooms(ctx, h.ID, h.Rooms); err != nil {
			errs = append(errs, err)
		}
	}
	for _, id := range res.Entertainments {
		if err := c.counters.MarkEntertainmentAvailable(ctx, id); err != nil {
			errs = append(errs, err)
		}
	}
	if res.TourPackageID != nil {
		if err := c.counters.RestoreTourSlot(ctx, *res.TourPackageID); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s:%w", op, errors.Join(errs...))
	}

	return nil
}

func isShortfall(err error) bool {
	return errors.Is(err, repository.ErrNoSeats) ||
		errors.Is(err, repository.ErrNoRooms) ||
		errors.Is(err, repository.ErrFullyBooked)
}
