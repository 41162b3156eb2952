package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
)

type PaymentRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *PaymentRepo) With(db DB) *PaymentRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *PaymentRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *PaymentRepo) InsertInstallments(ctx context.Context, plans []domain.Payment) error {
	const op = "postgres.PaymentRepo.InsertInstallments"

	db := r.handle()

	batch := &pgx.Batch{}
	for _, p := range plans {
		batch.Queue(
			`INSERT INTO payments(id, booking_id, invoice_id, installment_number, amount, due_date, status)
         	 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.ID, p.BookingID, p.InvoiceID, p.InstallmentNumber, p.Amount, p.DueDate, p.Status,
		)
	}
	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil
}

func (r *PaymentRepo) PlanByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error) {
	const op = "postgres.PaymentRepo.PlanByBooking"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, booking_id, invoice_id, installment_number, amount, due_date, status, paid_at
       	 FROM payments
      	 WHERE booking_id = $1
      	 ORDER BY installment_number`,
		bookingID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.InvoiceID, &p.InstallmentNumber, &p.Amount, &p.DueDate, &p.Status, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return out, nil
}

func (r *PaymentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	const op = "postgres.PaymentRepo.Get"

	db := r.handle()

	var p domain.Payment
	err := db.QueryRow(ctx,
		`SELECT id, booking_id, invoice_id, installment_number, amount, due_date, status, paid_at
       	 FROM payments WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.BookingID, &p.InvoiceID, &p.InstallmentNumber, &p.Amount, &p.DueDate, &p.Status, &p.PaidAt)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &p, nil
}

// MarkPaid flips one installment to Paid. The status guard rejects a second
// payment of the same installment.
//
// Returns:
//   - error: repository.ErrNotFound if the installment does not exist.
//   - error: repository.ErrConflict if it was already paid.
func (r *PaymentRepo) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (*domain.Payment, error) {
	const op = "postgres.PaymentRepo.MarkPaid"

	db := r.handle()

	var p domain.Payment
	err := db.QueryRow(ctx,
		`UPDATE payments
        	SET status = $2, paid_at = $3
      	 WHERE id = $1 AND status <> $2
     	 RETURNING id, booking_id, invoice_id, installment_number, amount, due_date, status, paid_at`,
		id, domain.PaymentPaid, paidAt,
	).Scan(&p.ID, &p.BookingID, &p.InvoiceID, &p.InstallmentNumber, &p.Amount, &p.DueDate, &p.Status, &p.PaidAt)
	if err == nil {
		return &p, nil
	}

	if !errors.Is(translateDBErr(err), repository.ErrNotFound) {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	var exists bool
	if err := db.QueryRow(ctx, `SELECT true FROM payments WHERE id = $1`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil, fmt.Errorf("%s:%w", op, repository.ErrConflict)
}

// MarkAllPaid settles every open installment of a booking in one statement.
// Used by the full-payment confirmation flip.
func (r *PaymentRepo) MarkAllPaid(ctx context.Context, bookingID uuid.UUID, paidAt time.Time) (int64, error) {
	const op = "postgres.PaymentRepo.MarkAllPaid"

	db := r.handle()

	ct, err := db.Exec(ctx,
		`UPDATE payments
        	SET status = $2, paid_at = $3
      	 WHERE booking_id = $1 AND status <> $2`,
		bookingID, domain.PaymentPaid, paidAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return ct.RowsAffected(), nil
}

func (r *PaymentRepo) InsertRefund(ctx context.Context, rf *domain.Refund) error {
	const op = "postgres.PaymentRepo.InsertRefund"

	db := r.handle()

	err := db.QueryRow(ctx,
		`INSERT INTO refunds(id, booking_id, user_id, amount, reason, status)
       	 VALUES ($1, $2, $3, $4, $5, $6)
     	 RETURNING created_at`,
		rf.ID, rf.BookingID, rf.UserID, rf.Amount, rf.Reason, rf.Status,
	).Scan(&rf.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil
}
