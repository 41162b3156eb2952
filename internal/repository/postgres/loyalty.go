package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
)

// LoyaltyRepo holds the append-only point ledger and the denormalized balance
// on the user row. Callers must run AppendTxn and ApplyDelta inside one
// transaction (via With) so the two can never diverge.
type LoyaltyRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *LoyaltyRepo) With(db DB) *LoyaltyRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *LoyaltyRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *LoyaltyRepo) AppendTxn(ctx context.Context, t *domain.LoyaltyTransaction) error {
	const op = "postgres.LoyaltyRepo.AppendTxn"

	db := r.handle()

	err := db.QueryRow(ctx,
		`INSERT INTO loyalty_transactions(id, user_id, booking_id, points, type, description, expiry_date, status)
       	 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
     	 RETURNING created_at`,
		t.ID, t.UserID, t.BookingID, t.Points, t.Type, t.Description, t.ExpiryDate, t.Status,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil
}

// ApplyDelta moves the denormalized balance. Negative deltas are guarded so
// the balance can never go below zero; the guard and the write are one
// statement, so concurrent redemptions cannot both spend the same points.
//
// Returns:
//   - int64: the new balance.
//   - error: repository.ErrInsufficientPoints when a deduction exceeds the balance.
//   - error: repository.ErrNotFound when the user does not exist.
func (r *LoyaltyRepo) ApplyDelta(ctx context.Context, userID uuid.UUID, delta int64) (int64, error) {
	const op = "postgres.LoyaltyRepo.ApplyDelta"

	db := r.handle()

	var balance int64
	err := db.QueryRow(ctx,
		`UPDATE users
        	SET loyalty_points = loyalty_points + $2
      	 WHERE id = $1 AND loyalty_points + $2 >= 0
     	 RETURNING loyalty_points`,
		userID, delta,
	).Scan(&balance)
	if err == nil {
		return balance, nil
	}

	if !errors.Is(translateDBErr(err), repository.ErrNotFound) {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	var exists bool
	if err := db.QueryRow(ctx, `SELECT true FROM users WHERE id = $1`, userID).Scan(&exists); err != nil {
		return 0, fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return 0, fmt.Errorf("%s:%w", op, repository.ErrInsufficientPoints)
}

func (r *LoyaltyRepo) SetTier(ctx context.Context, userID uuid.UUID, tier domain.Tier) error {
	const op = "postgres.LoyaltyRepo.SetTier"

	db := r.handle()

	ct, err := db.Exec(ctx,
		`UPDATE users SET membership_tier = $2 WHERE id = $1`,
		userID, tier,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *LoyaltyRepo) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const op = "postgres.LoyaltyRepo.GetUser"

	db := r.handle()

	var u domain.User
	err := db.QueryRow(ctx,
		`SELECT id, name, email, loyalty_points, membership_tier, created_at
       	 FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.LoyaltyPoints, &u.Tier, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &u, nil
}

func (r *LoyaltyRepo) History(ctx context.Context, userID uuid.UUID) ([]domain.LoyaltyTransaction, error) {
	const op = "postgres.LoyaltyRepo.History"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, user_id, booking_id, points, type, description, expiry_date, status, created_at
       	 FROM loyalty_transactions
      	 WHERE user_id = $1
      	 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.LoyaltyTransaction
	for rows.Next() {
		var t domain.LoyaltyTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.BookingID, &t.Points, &t.Type, &t.Description, &t.ExpiryDate, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return out, nil
}
