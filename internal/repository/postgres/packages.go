package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
)

type PackageRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *PackageRepo) With(db DB) *PackageRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *PackageRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// CreateCustomPackage persists a composed package. The flight id array keeps
// the composer's chain order.
func (r *PackageRepo) CreateCustomPackage(ctx context.Context, p *domain.CustomPackage) error {
	const op = "postgres.PackageRepo.CreateCustomPackage"

	db := r.handle()

	err := db.QueryRow(ctx,
		`INSERT INTO custom_packages(id, user_id, flight_ids, hotel_ids, entertainment_ids)
       	 VALUES ($1, $2, $3, $4, $5)
     	 RETURNING created_at`,
		p.ID, p.UserID, p.FlightIDs, p.HotelIDs, p.EntertainmentIDs,
	).Scan(&p.CreatedAt)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func (r *PackageRepo) GetCustomPackage(ctx context.Context, id uuid.UUID) (*domain.CustomPackage, error) {
	const op = "postgres.PackageRepo.GetCustomPackage"

	db := r.handle()

	var p domain.CustomPackage
	err := db.QueryRow(ctx,
		`SELECT id, user_id, flight_ids, hotel_ids, entertainment_ids, created_at
       	 FROM custom_packages WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.UserID, &p.FlightIDs, &p.HotelIDs, &p.EntertainmentIDs, &p.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &p, nil
}

func (r *PackageRepo) ListCustomPackagesByUser(ctx context.Context, userID uuid.UUID) ([]domain.CustomPackage, error) {
	const op = "postgres.PackageRepo.ListCustomPackagesByUser"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, user_id, flight_ids, hotel_ids, entertainment_ids, created_at
       	 FROM custom_packages WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.CustomPackage
	for rows.Next() {
		var p domain.CustomPackage
		if err := rows.Scan(&p.ID, &p.UserID, &p.FlightIDs, &p.HotelIDs, &p.EntertainmentIDs, &p.CreatedAt); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *PackageRepo) DeleteCustomPackage(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.PackageRepo.DeleteCustomPackage"

	db := r.handle()

	ct, err := db.Exec(ctx, `DELETE FROM custom_packages WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}
