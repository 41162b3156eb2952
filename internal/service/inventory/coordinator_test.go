package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
)

// fakeCounters mimics the conditional-update semantics of the real repo:
// every take checks and mutates under one lock, as a single SQL statement
// would.
type fakeCounters struct {
	mu     sync.Mutex
	seats  map[uuid.UUID]float64
	rooms  map[uuid.UUID]int
	slots  map[uuid.UUID]int
	booked map[uuid.UUID]bool
	failOn map[uuid.UUID]error // forced failures, matched before counters
}

func newFakeCounters() *fakeCounters {
	return &fakeCounters{
		seats:  map[uuid.UUID]float64{},
		rooms:  map[uuid.UUID]int{},
		slots:  map[uuid.UUID]int{},
		booked: map[uuid.UUID]bool{},
		failOn: map[uuid.UUID]error{},
	}
}

func (f *fakeCounters) TakeFlightSeats(_ context.Context, id uuid.UUID, units float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failOn[id]; err != nil {
		return err
	}
	if f.seats[id] <= 0 {
		return repository.ErrNoSeats
	}
	f.seats[id] -= units
	return nil
}

func (f *fakeCounters) RestoreFlightSeats(_ context.Context, id uuid.UUID, units float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seats[id] += units
	return nil
}

func (f *fakeCounters) TakeHotelRooms(_ context.Context, id uuid.UUID, rooms int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failOn[id]; err != nil {
		return err
	}
	if f.rooms[id] < rooms {
		return repository.ErrNoRooms
	}
	f.rooms[id] -= rooms
	return nil
}

func (f *fakeCounters) RestoreHotelRooms(_ context.Context, id uuid.UUID, rooms int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rooms[id] += rooms
	return nil
}

func (f *fakeCounters) TakeTourSlot(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failOn[id]; err != nil {
		return err
	}
	if f.slots[id] <= 0 {
		return repository.ErrFullyBooked
	}
	f.slots[id]--
	return nil
}

func (f *fakeCounters) RestoreTourSlot(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots[id]++
	return nil
}

func (f *fakeCounters) MarkEntertainmentBooked(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failOn[id]; err != nil {
		return err
	}
	f.booked[id] = true
	return nil
}

func (f *fakeCounters) MarkEntertainmentAvailable(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.booked[id] = false
	return nil
}

func TestReserve_TakesEverythingInTheSet(t *testing.T) {
	fc := newFakeCounters()
	flight := domain.Flight{ID: uuid.New(), AirlineName: "AirOne"}
	hotel := domain.Hotel{ID: uuid.New(), HotelName: "Inn"}
	ent := domain.Entertainment{ID: uuid.New(), Name: "Show"}
	fc.seats[flight.ID] = 3
	fc.rooms[hotel.ID] = 5

	c := NewCoordinator(fc)

	res, err := c.Reserve(context.Background(), domain.ItemSet{
		Flights:        []domain.Flight{flight},
		Hotels:         []domain.Hotel{hotel},
		HotelRooms:     2,
		Entertainments: []domain.Entertainment{ent},
	})
	require.NoError(t, err)

	assert.Equal(t, 3-domain.FlightSeatUnit, fc.seats[flight.ID])
	assert.Equal(t, 3, fc.rooms[hotel.ID])
	assert.True(t, fc.booked[ent.ID])

	require.Len(t, res.Flights, 1)
	assert.Equal(t, domain.FlightSeatUnit, res.Flights[0].Units)
	require.Len(t, res.Hotels, 1)
	assert.Equal(t, 2, res.Hotels[0].Rooms)
}

func TestReserve_MidFailureRestoresClaimedItems(t *testing.T) {
	fc := newFakeCounters()
	f1 := domain.Flight{ID: uuid.New(), AirlineName: "AirOne"}
	f2 := domain.Flight{ID: uuid.New(), AirlineName: "AirTwo"}
	fc.seats[f1.ID] = 1
	fc.seats[f2.ID] = 0 // second claim fails

	c := NewCoordinator(fc)

	res, err := c.Reserve(context.Background(), domain.ItemSet{
		Flights: []domain.Flight{f1, f2},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientInventory)
	assert.Contains(t, err.Error(), "AirTwo")
	assert.True(t, res.Empty())

	// The seat taken from f1 must be back.
	assert.Equal(t, 1.0, fc.seats[f1.ID])
}

func TestReserve_TourSlotExhausted(t *testing.T) {
	fc := newFakeCounters()
	tourID := uuid.New()
	hotel := domain.Hotel{ID: uuid.New(), HotelName: "Inn"}
	fc.rooms[hotel.ID] = 1
	fc.slots[tourID] = 0

	c := NewCoordinator(fc)

	_, err := c.Reserve(context.Background(), domain.ItemSet{
		Hotels:        []domain.Hotel{hotel},
		TourPackageID: &tourID,
	})
	require.ErrorIs(t, err, ErrInsufficientInventory)

	assert.Equal(t, 1, fc.rooms[hotel.ID])
}

func TestReserve_UnexpectedErrorIsNotTranslated(t *testing.T) {
	fc := newFakeCounters()
	flight := domain.Flight{ID: uuid.New(), AirlineName: "AirOne"}
	boom := errors.New("connection reset")
	fc.failOn[flight.ID] = boom

	c := NewCoordinator(fc)

	_, err := c.Reserve(context.Background(), domain.ItemSet{
		Flights: []domain.Flight{flight},
	})
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInsufficientInventory)
}

func TestRelease_RestoresExactlyWhatWasTaken(t *testing.T) {
	fc := newFakeCounters()
	fid, hid, eid, tid := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	fc.seats[fid] = 2
	fc.rooms[hid] = 1
	fc.slots[tid] = 0
	fc.booked[eid] = true

	c := NewCoordinator(fc)

	err := c.Release(context.Background(), domain.Reservation{
		Flights:        []domain.ReservedFlight{{ID: fid, Units: domain.FlightSeatUnit}},
		Hotels:         []domain.ReservedHotel{{ID: hid, Rooms: 3}},
		Entertainments: []uuid.UUID{eid},
		TourPackageID:  &tid,
	})
	require.NoError(t, err)

	assert.Equal(t, 2+domain.FlightSeatUnit, fc.seats[fid])
	assert.Equal(t, 4, fc.rooms[hid])
	assert.Equal(t, 1, fc.slots[tid])
	assert.False(t, fc.booked[eid])
}

func TestRelease_EmptyReservationIsNoop(t *testing.T) {
	fc := newFakeCounters()
	c := NewCoordinator(fc)

	require.NoError(t, c.Release(context.Background(), domain.Reservation{}))
	assert.Empty(t, fc.seats)
}

// Concurrent bookings for the final hotel room must produce exactly one
// winner; reserve/release pairs must conserve the counter.
func TestReserve_ConcurrentContention(t *testing.T) {
	fc := newFakeCounters()
	hotel := domain.Hotel{ID: uuid.New(), HotelName: "Inn"}
	fc.rooms[hotel.ID] = 1

	c := NewCoordinator(fc)

	const n = 16
	results := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Reserve(context.Background(), domain.ItemSet{
				Hotels: []domain.Hotel{hotel},
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var winners int
	for err := range results {
		if err == nil {
			winners++
		} else {
			require.ErrorIs(t, err, ErrInsufficientInventory)
		}
	}

	assert.Equal(t, 1, winners)
	assert.Equal(t, 0, fc.rooms[hotel.ID])
}
