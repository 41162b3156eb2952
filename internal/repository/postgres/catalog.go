package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okatsune/voyago/internal/domain"
)

// CatalogRepo is the read side of the resource catalog: flights, hotels,
// entertainments and admin-authored tour packages. Counters on these rows are
// mutated only through InventoryRepo.
type CatalogRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *CatalogRepo) With(db DB) *CatalogRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *CatalogRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *CatalogRepo) GetFlight(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	const op = "postgres.CatalogRepo.GetFlight"

	db := r.handle()

	var f domain.Flight
	err := db.QueryRow(ctx,
		`SELECT id, airline_name, origin, destination, date, price, seats_available
       	 FROM flights WHERE id = $1`,
		id,
	).Scan(&f.ID, &f.AirlineName, &f.Origin, &f.Destination, &f.Date, &f.Price, &f.SeatsAvailable)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &f, nil
}

// FlightsByIDs returns the flights matching ids. Missing ids are skipped, not
// an error; the composer decides what a missing candidate means.
func (r *CatalogRepo) FlightsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Flight, error) {
	const op = "postgres.CatalogRepo.FlightsByIDs"

	if len(ids) == 0 {
		return nil, nil
	}

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, airline_name, origin, destination, date, price, seats_available
       	 FROM flights WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	return scanFlights(op, rows)
}

func (r *CatalogRepo) ListFlights(ctx context.Context, limit, offset int) ([]domain.Flight, error) {
	const op = "postgres.CatalogRepo.ListFlights"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, airline_name, origin, destination, date, price, seats_available
       	 FROM flights ORDER BY date LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	return scanFlights(op, rows)
}

func scanFlights(op string, rows pgx.Rows) ([]domain.Flight, error) {
	var out []domain.Flight
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.AirlineName, &f.Origin, &f.Destination, &f.Date, &f.Price, &f.SeatsAvailable); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return out, nil
}

func (r *CatalogRepo) GetHotel(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	const op = "postgres.CatalogRepo.GetHotel"

	db := r.handle()

	var h domain.Hotel
	err := db.QueryRow(ctx,
		`SELECT id, hotel_name, location, price_per_night, rooms_available
       	 FROM hotels WHERE id = $1`,
		id,
	).Scan(&h.ID, &h.HotelName, &h.Location, &h.PricePerNight, &h.RoomsAvailable)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &h, nil
}

func (r *CatalogRepo) HotelsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Hotel, error) {
	const op = "postgres.CatalogRepo.HotelsByIDs"

	if len(ids) == 0 {
		return nil, nil
	}

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, hotel_name, location, price_per_night, rooms_available
       	 FROM hotels WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	return scanHotels(op, rows)
}

func (r *CatalogRepo) ListHotels(ctx context.Context, limit, offset int) ([]domain.Hotel, error) {
	const op = "postgres.CatalogRepo.ListHotels"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, hotel_name, location, price_per_night, rooms_available
       	 FROM hotels ORDER BY hotel_name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	return scanHotels(op, rows)
}

func scanHotels(op string, rows pgx.Rows) ([]domain.Hotel, error) {
	var out []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.HotelName, &h.Location, &h.PricePerNight, &h.RoomsAvailable); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return out, nil
}

func (r *CatalogRepo) GetEntertainment(ctx context.Context, id uuid.UUID) (*domain.Entertainment, error) {
	const op = "postgres.CatalogRepo.GetEntertainment"

	db := r.handle()

	var e domain.Entertainment
	err := db.QueryRow(ctx,
		`SELECT id, name, location, price, available
       	 FROM entertainments WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Name, &e.Location, &e.Price, &e.Available)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &e, nil
}

func (r *CatalogRepo) EntertainmentsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Entertainment, error) {
	const op = "postgres.CatalogRepo.EntertainmentsByIDs"

	if len(ids) == 0 {
		return nil, nil
	}

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, location, price, available
       	 FROM entertainments WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	return scanEntertainments(op, rows)
}

func (r *CatalogRepo) ListEntertainments(ctx context.Context, limit, offset int) ([]domain.Entertainment, error) {
	const op = "postgres.CatalogRepo.ListEntertainments"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, location, price, available
       	 FROM entertainments ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	return scanEntertainments(op, rows)
}

func scanEntertainments(op string, rows pgx.Rows) ([]domain.Entertainment, error) {
	var out []domain.Entertainment
	for rows.Next() {
		var e domain.Entertainment
		if err := rows.Scan(&e.ID, &e.Name, &e.Location, &e.Price, &e.Available); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return out, nil
}

func (r *CatalogRepo) GetTourPackage(ctx context.Context, id uuid.UUID) (*domain.TourPackage, error) {
	const op = "postgres.CatalogRepo.GetTourPackage"

	db := r.handle()

	var p domain.TourPackage
	err := db.QueryRow(ctx,
		`SELECT id, title, details, location, duration, price, availability, max_capacity
       	 FROM tour_packages WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.Details, &p.Location, &p.Duration, &p.Price, &p.Availability, &p.MaxCapacity)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &p, nil
}

func (r *CatalogRepo) ListTourPackages(ctx context.Context, limit, offset int) ([]domain.TourPackage, error) {
	const op = "postgres.CatalogRepo.ListTourPackages"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, title, details, location, duration, price, availability, max_capacity
       	 FROM tour_packages ORDER BY title LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.TourPackage
	for rows.Next() {
		var p domain.TourPackage
		if err := rows.Scan(&p.ID, &p.Title, &p.Details, &p.Location, &p.Duration, &p.Price, &p.Availability, &p.MaxCapacity); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return out, nil
}
