package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
)

type BookingRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *BookingRepo) With(db DB) *BookingRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *BookingRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

const bookingColumns = `id, user_id, kind, tour_package_id, custom_package_id, hotel_id, flight_id,
	name, number_of_people, start_date, email, departure_city, status, total_price,
	reservation, refund_requested, refund_status, refund_reason, refund_amount,
	created_at, updated_at`

// Insert persists a booking together with its reservation snapshot. The
// snapshot is what cancellation later releases, so it must list exactly the
// inventory the coordinator took, nothing more.
func (r *BookingRepo) Insert(ctx context.Context, b *domain.Booking) error {
	const op = "postgres.BookingRepo.Insert"

	db := r.handle()

	resJSON, err := json.Marshal(b.Reservation)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	err = db.QueryRow(ctx,
		`INSERT INTO bookings(id, user_id, kind, tour_package_id, custom_package_id, hotel_id, flight_id,
			name, number_of_people, start_date, email, departure_city, status, total_price, reservation)
       	 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
     	 RETURNING created_at, updated_at`,
		b.ID, b.UserID, b.Kind, b.TourPackageID, b.CustomPackageID, b.HotelID, b.FlightID,
		b.Name, b.NumberOfPeople, b.StartDate, b.Email, b.DepartureCity, b.Status, b.TotalPrice, resJSON,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil
}

func (r *BookingRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	const op = "postgres.BookingRepo.Get"

	db := r.handle()

	row := db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return b, nil
}

func (r *BookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	const op = "postgres.BookingRepo.ListByUser"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return out, nil
}

// MarkCancelled flips a booking to Cancelled. The status guard makes the flip
// single-winner under concurrent cancels: exactly one caller gets the updated
// row back and owns the follow-up inventory release.
//
// Returns:
//   - error: repository.ErrNotFound if the booking does not exist.
//   - error: repository.ErrAlreadyCancelled if it was already cancelled.
func (r *BookingRepo) MarkCancelled(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	const op = "postgres.BookingRepo.MarkCancelled"

	db := r.handle()

	row := db.QueryRow(ctx,
		`UPDATE bookings
        	SET status = $2, updated_at = now()
      	 WHERE id = $1 AND status <> $2
     	 RETURNING `+bookingColumns,
		id, domain.BookingCancelled,
	)

	b, err := scanBooking(row)
	if err == nil {
		return b, nil
	}

	if !errors.Is(translateDBErr(err), repository.ErrNotFound) {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	// No row matched: either absent or already cancelled.
	var exists bool
	if err := db.QueryRow(ctx,
		`SELECT true FROM bookings WHERE id = $1`, id,
	).Scan(&exists); err != nil {
		if errors.Is(translateDBErr(err), repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil, fmt.Errorf("%s:%w", op, repository.ErrAlreadyCancelled)
}

// MarkRefundRequested records the refund request on the booking row. The
// refund_status guard keeps the sub-state monotonic: only a booking still at
// "none" can move to "requested".
//
// Returns:
//   - error: repository.ErrConflict if a refund was already requested or processed.
func (r *BookingRepo) MarkRefundRequested(ctx context.Context, id uuid.UUID, reason string, amount float64) (*domain.Booking, error) {
	const op = "postgres.BookingRepo.MarkRefundRequested"

	db := r.handle()

	row := db.QueryRow(ctx,
		`UPDATE bookings
        	SET refund_requested = true,
            	refund_status = $2,
            	refund_reason = $3,
            	refund_amount = $4,
            	updated_at = now()
      	 WHERE id = $1 AND refund_status = $5
     	 RETURNING `+bookingColumns,
		id, domain.RefundRequested, reason, amount, domain.RefundNone,
	)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(translateDBErr(err), repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, repository.ErrConflict)
		}
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return b, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var (
		b       domain.Booking
		resJSON []byte
	)

	err := row.Scan(
		&b.ID, &b.UserID, &b.Kind, &b.TourPackageID, &b.CustomPackageID, &b.HotelID, &b.FlightID,
		&b.Name, &b.NumberOfPeople, &b.StartDate, &b.Email, &b.DepartureCity, &b.Status, &b.TotalPrice,
		&resJSON, &b.RefundRequested, &b.RefundStatus, &b.RefundReason, &b.RefundAmount,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(resJSON) > 0 {
		if err := json.Unmarshal(resJSON, &b.Reservation); err != nil {
			return nil, err
		}
	}

	return &b, nil
}
