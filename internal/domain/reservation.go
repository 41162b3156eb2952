package domain

import "github.com/google/uuid"

// FlightSeatUnit is how much a single booking takes from a flight's
// seats_available counter. The fractional unit is inherited booking policy.
const FlightSeatUnit = 0.5

// ItemSet is everything a booking wants to reserve, resolved against the
// catalog. Names are carried so reservation failures can say which item
// ran out.
type ItemSet struct {
	Flights        []Flight
	Hotels         []Hotel
	HotelRooms     int // rooms per hotel; 0 means 1
	Entertainments []Entertainment
	TourPackageID  *uuid.UUID
}

// ReservedFlight records an applied seat decrement so release can restore
// exactly the taken amount.
type ReservedFlight struct {
	ID    uuid.UUID `json:"id"`
	Units float64   `json:"units"`
}

type ReservedHotel struct {
	ID    uuid.UUID `json:"id"`
	Rooms int       `json:"rooms"`
}

// Reservation is the per-item outcome of a successful reserve pass. It is
// snapshotted onto the booking row, and release restores only what it lists.
// An empty Reservation releases nothing, which makes release safe to call on
// bookings whose reservation never happened.
type Reservation struct {
	Flights        []ReservedFlight `json:"flights,omitempty"`
	Hotels         []ReservedHotel  `json:"hotels,omitempty"`
	Entertainments []uuid.UUID      `json:"entertainments,omitempty"`
	TourPackageID  *uuid.UUID       `json:"tour_package,omitempty"`
}

// Empty reports whether the reservation holds no inventory at all.
func (r Reservation) Empty() bool {
	return len(r.Flights) == 0 &&
		len(r.Hotels) == 0 &&
		len(r.Entertainments) == 0 &&
		r.TourPackageID == nil
}
