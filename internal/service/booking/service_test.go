package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
)

type fakeCatalog struct {
	flights map[uuid.UUID]domain.Flight
	hotels  map[uuid.UUID]domain.Hotel
	ents    map[uuid.UUID]domain.Entertainment
	tours   map[uuid.UUID]domain.TourPackage
}

func (f *fakeCatalog) GetFlight(_ context.Context, id uuid.UUID) (*domain.Flight, error) {
	if v, ok := f.flights[id]; ok {
		return &v, nil
	}
	return nil, fmt.Errorf("fake:%w", repository.ErrNotFound)
}

func (f *fakeCatalog) GetHotel(_ context.Context, id uuid.UUID) (*domain.Hotel, error) {
	if v, ok := f.hotels[id]; ok {
		return &v, nil
	}
	return nil, fmt.Errorf("fake:%w", repository.ErrNotFound)
}

func (f *fakeCatalog) GetTourPackage(_ context.Context, id uuid.UUID) (*domain.TourPackage, error) {
	if v, ok := f.tours[id]; ok {
		return &v, nil
	}
	return nil, fmt.Errorf("fake:%w", repository.ErrNotFound)
}

func (f *fakeCatalog) FlightsByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Flight, error) {
	var out []domain.Flight
	for _, id := range ids {
		if v, ok := f.flights[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeCatalog) HotelsByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Hotel, error) {
	var out []domain.Hotel
	for _, id := range ids {
		if v, ok := f.hotels[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeCatalog) EntertainmentsByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Entertainment, error) {
	var out []domain.Entertainment
	for _, id := range ids {
		if v, ok := f.ents[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakePackages struct {
	pkgs map[uuid.UUID]domain.CustomPackage
}

func (f *fakePackages) GetCustomPackage(_ context.Context, id uuid.UUID) (*domain.CustomPackage, error) {
	if v, ok := f.pkgs[id]; ok {
		return &v, nil
	}
	return nil, fmt.Errorf("fake:%w", repository.ErrNotFound)
}

type fakeBookings struct {
	rows      map[uuid.UUID]*domain.Booking
	insertErr error
}

func (f *fakeBookings) Insert(_ context.Context, b *domain.Booking) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if f.rows == nil {
		f.rows = map[uuid.UUID]*domain.Booking{}
	}
	cp := *b
	f.rows[b.ID] = &cp
	return nil
}

func (f *fakeBookings) Get(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	if b, ok := f.rows[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, fmt.Errorf("fake:%w", repository.ErrNotFound)
}

func (f *fakeBookings) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.rows {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookings) MarkCancelled(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("fake:%w", repository.ErrNotFound)
	}
	if b.Status == domain.BookingCancelled {
		return nil, fmt.Errorf("fake:%w", repository.ErrAlreadyCancelled)
	}
	b.Status = domain.BookingCancelled
	cp := *b
	return &cp, nil
}

type fakeReserver struct {
	reserveErr error
	reserved   []domain.ItemSet
	released   []domain.Reservation
}

func (f *fakeReserver) Reserve(_ context.Context, set domain.ItemSet) (domain.Reservation, error) {
	if f.reserveErr != nil {
		return domain.Reservation{}, f.reserveErr
	}
	f.reserved = append(f.reserved, set)

	var res domain.Reservation
	for _, fl := range set.Flights {
		res.Flights = append(res.Flights, domain.ReservedFlight{ID: fl.ID, Units: domain.FlightSeatUnit})
	}
	rooms := set.HotelRooms
	if rooms <= 0 {
		rooms = 1
	}
	for _, h := range set.Hotels {
		res.Hotels = append(res.Hotels, domain.ReservedHotel{ID: h.ID, Rooms: rooms})
	}
	for _, e := range set.Entertainments {
		res.Entertainments = append(res.Entertainments, e.ID)
	}
	res.TourPackageID = set.TourPackageID
	return res, nil
}

func (f *fakeReserver) Release(_ context.Context, res domain.Reservation) error {
	f.released = append(f.released, res)
	return nil
}

type fakeLedger struct {
	awards []domain.BookingKind
	err    error
}

func (f *fakeLedger) AwardBookingPoints(_ context.Context, userID, bookingID uuid.UUID, kind domain.BookingKind) (*domain.LoyaltyTransaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.awards = append(f.awards, kind)
	return &domain.LoyaltyTransaction{
		ID:     uuid.New(),
		UserID: userID,
		Points: domain.PointsForKind(kind),
	}, nil
}

func newService(cat *fakeCatalog, pkgs *fakePackages, bk *fakeBookings, rsv *fakeReserver, led *fakeLedger) *Service {
	return New(cat, pkgs, bk, rsv, led, nil, nil, nil)
}

func TestCreate_HotelBooking(t *testing.T) {
	h := domain.Hotel{ID: uuid.New(), HotelName: "Inn", PricePerNight: 120}
	cat := &fakeCatalog{hotels: map[uuid.UUID]domain.Hotel{h.ID: h}}
	bk := &fakeBookings{}
	rsv := &fakeReserver{}
	led := &fakeLedger{}
	svc := newService(cat, &fakePackages{}, bk, rsv, led)

	userID := uuid.New()
	b, err := svc.Create(context.Background(), userID, CreateRequest{
		HotelID: &h.ID,
		Name:    "Ann",
		Email:   "ann@example.com",
		Rooms:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingHotel, b.Kind)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, 240.0, b.TotalPrice)
	require.NotNil(t, b.HotelID)
	assert.Equal(t, h.ID, *b.HotelID)

	require.Len(t, b.Reservation.Hotels, 1)
	assert.Equal(t, 2, b.Reservation.Hotels[0].Rooms)

	assert.Contains(t, bk.rows, b.ID)
	assert.Equal(t, []domain.BookingKind{domain.BookingHotel}, led.awards)
}

func TestCreate_CustomPackageBooking(t *testing.T) {
	f := domain.Flight{ID: uuid.New(), AirlineName: "AirOne", Price: 200}
	h := domain.Hotel{ID: uuid.New(), HotelName: "Inn", PricePerNight: 100}
	e := domain.Entertainment{ID: uuid.New(), Name: "Show", Price: 50}
	pkg := domain.CustomPackage{
		ID:               uuid.New(),
		FlightIDs:        []uuid.UUID{f.ID},
		HotelIDs:         []uuid.UUID{h.ID},
		EntertainmentIDs: []uuid.UUID{e.ID},
	}

	cat := &fakeCatalog{
		flights: map[uuid.UUID]domain.Flight{f.ID: f},
		hotels:  map[uuid.UUID]domain.Hotel{h.ID: h},
		ents:    map[uuid.UUID]domain.Entertainment{e.ID: e},
	}
	pkgs := &fakePackages{pkgs: map[uuid.UUID]domain.CustomPackage{pkg.ID: pkg}}
	svc := newService(cat, pkgs, &fakeBookings{}, &fakeReserver{}, &fakeLedger{})

	b, err := svc.Create(context.Background(), uuid.New(), CreateRequest{PackageID: &pkg.ID})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingCustom, b.Kind)
	assert.Equal(t, 350.0, b.TotalPrice)
	require.NotNil(t, b.CustomPackageID)
	assert.Equal(t, pkg.ID, *b.CustomPackageID)
	assert.Len(t, b.Reservation.Flights, 1)
	assert.Len(t, b.Reservation.Hotels, 1)
	assert.Len(t, b.Reservation.Entertainments, 1)
}

func TestCreate_TourPackageFallback(t *testing.T) {
	tp := domain.TourPackage{ID: uuid.New(), Title: "Alps", Price: 999}
	cat := &fakeCatalog{tours: map[uuid.UUID]domain.TourPackage{tp.ID: tp}}
	svc := newService(cat, &fakePackages{}, &fakeBookings{}, &fakeReserver{}, &fakeLedger{})

	b, err := svc.Create(context.Background(), uuid.New(), CreateRequest{PackageID: &tp.ID})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingTour, b.Kind)
	assert.Equal(t, 999.0, b.TotalPrice)
	require.NotNil(t, b.Reservation.TourPackageID)
	assert.Equal(t, tp.ID, *b.Reservation.TourPackageID)
}

func TestCreate_UnknownPackage(t *testing.T) {
	svc := newService(&fakeCatalog{}, &fakePackages{}, &fakeBookings{}, &fakeReserver{}, &fakeLedger{})

	id := uuid.New()
	_, err := svc.Create(context.Background(), uuid.New(), CreateRequest{PackageID: &id})
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestCreate_NoTarget(t *testing.T) {
	svc := newService(&fakeCatalog{}, &fakePackages{}, &fakeBookings{}, &fakeReserver{}, &fakeLedger{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateRequest{})
	assert.ErrorIs(t, err, ErrNoTarget)
}

func TestCreate_InsertFailureReleasesReservation(t *testing.T) {
	h := domain.Hotel{ID: uuid.New(), HotelName: "Inn", PricePerNight: 100}
	cat := &fakeCatalog{hotels: map[uuid.UUID]domain.Hotel{h.ID: h}}
	bk := &fakeBookings{insertErr: errors.New("db down")}
	rsv := &fakeReserver{}
	svc := newService(cat, &fakePackages{}, bk, rsv, &fakeLedger{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateRequest{HotelID: &h.ID})
	require.Error(t, err)

	require.Len(t, rsv.released, 1)
	assert.Len(t, rsv.released[0].Hotels, 1)
}

func TestCreate_LedgerFailureKeepsBooking(t *testing.T) {
	h := domain.Hotel{ID: uuid.New(), HotelName: "Inn", PricePerNight: 100}
	cat := &fakeCatalog{hotels: map[uuid.UUID]domain.Hotel{h.ID: h}}
	bk := &fakeBookings{}
	svc := newService(cat, &fakePackages{}, bk, &fakeReserver{}, &fakeLedger{err: errors.New("ledger down")})

	b, err := svc.Create(context.Background(), uuid.New(), CreateRequest{HotelID: &h.ID})
	require.NoError(t, err)
	assert.Contains(t, bk.rows, b.ID)
}

func TestCancel_ReleasesSnapshot(t *testing.T) {
	hid := uuid.New()
	b := &domain.Booking{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: domain.BookingConfirmed,
		Reservation: domain.Reservation{
			Hotels: []domain.ReservedHotel{{ID: hid, Rooms: 2}},
		},
	}
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	rsv := &fakeReserver{}
	svc := newService(&fakeCatalog{}, &fakePackages{}, bk, rsv, &fakeLedger{})

	got, err := svc.Cancel(context.Background(), b.UserID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)

	require.Len(t, rsv.released, 1)
	require.Len(t, rsv.released[0].Hotels, 1)
	assert.Equal(t, hid, rsv.released[0].Hotels[0].ID)
	assert.Equal(t, 2, rsv.released[0].Hotels[0].Rooms)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	b := &domain.Booking{ID: uuid.New(), UserID: uuid.New(), Status: domain.BookingCancelled}
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	rsv := &fakeReserver{}
	svc := newService(&fakeCatalog{}, &fakePackages{}, bk, rsv, &fakeLedger{})

	_, err := svc.Cancel(context.Background(), b.UserID, b.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Empty(t, rsv.released)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newService(&fakeCatalog{}, &fakePackages{}, &fakeBookings{}, &fakeReserver{}, &fakeLedger{})

	_, err := svc.Cancel(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_OtherUsersBookingIsHidden(t *testing.T) {
	b := &domain.Booking{ID: uuid.New(), UserID: uuid.New(), Status: domain.BookingConfirmed}
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	rsv := &fakeReserver{}
	svc := newService(&fakeCatalog{}, &fakePackages{}, bk, rsv, &fakeLedger{})

	_, err := svc.Cancel(context.Background(), uuid.New(), b.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, rsv.released)
	assert.Equal(t, domain.BookingConfirmed, bk.rows[b.ID].Status)
}

func TestGet_OtherUsersBookingIsHidden(t *testing.T) {
	owner := uuid.New()
	b := &domain.Booking{ID: uuid.New(), UserID: owner, Status: domain.BookingConfirmed}
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	svc := newService(&fakeCatalog{}, &fakePackages{}, bk, &fakeReserver{}, &fakeLedger{})

	got, err := svc.Get(context.Background(), owner, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = svc.Get(context.Background(), uuid.New(), b.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
