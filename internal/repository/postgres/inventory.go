package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okatsune/voyago/internal/repository"
)

// InventoryRepo owns every availability counter mutation. Each take is a
// single conditional UPDATE, so two concurrent bookings contending for the
// last unit resolve at the database: one statement matches the row, the other
// matches nothing and fails. No read-modify-write cycle exists anywhere.
type InventoryRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *InventoryRepo) With(db DB) *InventoryRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *InventoryRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// TakeFlightSeats claims units from a flight's seat counter. The guard is
// seats_available > 0, not >= units: a flight with half a seat left still
// accepts a booking. That matches the inherited fractional-unit policy.
//
// Returns:
//   - error: repository.ErrNoSeats when the flight has no seats left.
func (r *InventoryRepo) TakeFlightSeats(ctx context.Context, id uuid.UUID, units float64) error {
	const op = "postgres.InventoryRepo.TakeFlightSeats"

	db := r.handle()

	ct, err := db.Exec(ctx,
		`UPDATE flights
        	SET seats_available = seats_available - $2
      	 WHERE id = $1 AND seats_available > 0`,
		id, units,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNoSeats)
	}

	return nil
}

func (r *InventoryRepo) RestoreFlightSeats(ctx context.Context, id uuid.UUID, units float64) error {
	const op = "postgres.InventoryRepo.RestoreFlightSeats"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`UPDATE flights
        	SET seats_available = seats_available + $2
      	 WHERE id = $1`,
		id, units,
	); err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil
}

// TakeHotelRooms claims rooms from a hotel's counter.
//
// Returns:
//   - error: repository.ErrNoRooms when fewer than rooms are available.
func (r *InventoryRepo) TakeHotelRooms(ctx context.Context, id uuid.UUID, rooms int) error {
	const op = "postgres.InventoryRepo.TakeHotelRooms"

	db := r.handle()

	ct, err := db.Exec(ctx,
		`UPDATE hotels
        	SET rooms_available = rooms_available - $2
      	 WHERE id = $1 AND rooms_available >= $2`,
		id, rooms,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNoRooms)
	}

	return nil
}

func (r *InventoryRepo) RestoreHotelRooms(ctx context.Context, id uuid.UUID, rooms int) error {
	const op = "postgres.InventoryRepo.RestoreHotelRooms"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`UPDATE hotels
        	SET rooms_available = rooms_available + $2
      	 WHERE id = $1`,
		id, rooms,
	); err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil
}

// TakeTourSlot claims one concurrent-booking slot on a tour package.
//
// Returns:
//   - error: repository.ErrFullyBooked when availability is exhausted.
func (r *InventoryRepo) TakeTourSlot(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.InventoryRepo.TakeTourSlot"

	db := r.handle()

	ct, err := db.Exec(ctx,
		`UPDATE tour_packages
        	SET availability = availability - 1
      	 WHERE id = $1 AND availability > 0`,
		id,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrFullyBooked)
	}

	return nil
}

func (r *InventoryRepo) RestoreTourSlot(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.InventoryRepo.RestoreTourSlot"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`UPDATE tour_packages
        	SET availability = availability + 1
      	 WHERE id = $1`,
		id,
	); err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil
}

// MarkEntertainmentBooked flips the booked marker. Entertainment capacity is
// non-depleting: this always succeeds and is safe to repeat.
func (r *InventoryRepo) MarkEntertainmentBooked(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.InventoryRepo.MarkEntertainmentBooked"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`UPDATE entertainments SET available = false WHERE id = $1`,
		id,
	); err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil
}

func (r *InventoryRepo) MarkEntertainmentAvailable(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.InventoryRepo.MarkEntertainmentAvailable"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`UPDATE entertainments SET available = true WHERE id = $1`,
		id,
	); err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil
}
