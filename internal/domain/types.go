package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingKind discriminates what a booking reserves. Exactly one of the
// corresponding reference fields on Booking is set for a given kind.
type BookingKind string

const (
	BookingTour   BookingKind = "tour_package"
	BookingCustom BookingKind = "custom_package"
	BookingHotel  BookingKind = "hotel"
	BookingFlight BookingKind = "flight"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

// RefundStatus is monotonic: none -> requested -> approved|rejected -> processed.
type RefundStatus string

const (
	RefundNone      RefundStatus = "none"
	RefundRequested RefundStatus = "requested"
	RefundApproved  RefundStatus = "approved"
	RefundRejected  RefundStatus = "rejected"
	RefundProcessed RefundStatus = "processed"
)

type Flight struct {
	ID             uuid.UUID `json:"id"`
	AirlineName    string    `json:"airline_name"`
	Origin         string    `json:"from"`
	Destination    string    `json:"to"`
	Date           time.Time `json:"date"`
	Price          float64   `json:"price"`
	SeatsAvailable float64   `json:"seats_available"`
}

type Hotel struct {
	ID             uuid.UUID `json:"id"`
	HotelName      string    `json:"hotel_name"`
	Location       string    `json:"location"`
	PricePerNight  float64   `json:"price_per_night"`
	RoomsAvailable int       `json:"rooms_available"`
}

type Entertainment struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Price     float64   `json:"price"`
	Available bool      `json:"available"`
}

type TourPackage struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"package_title"`
	Details      string    `json:"package_details"`
	Location     string    `json:"location"`
	Duration     string    `json:"duration"`
	Price        float64   `json:"price"`
	Availability int       `json:"availability"`
	MaxCapacity  int       `json:"max_capacity"`
}

// CustomPackage is a user-assembled bundle. The flight list is ordered: it is
// the chronological chain produced by the composer. Immutable after creation.
type CustomPackage struct {
	ID               uuid.UUID   `json:"id"`
	UserID           uuid.UUID   `json:"user_id"`
	FlightIDs        []uuid.UUID `json:"flights"`
	HotelIDs         []uuid.UUID `json:"hotels"`
	EntertainmentIDs []uuid.UUID `json:"entertainments"`
	CreatedAt        time.Time   `json:"created_at"`
}

// CustomPackageItems is a custom package with its items resolved against the
// catalog, in the same order as the id lists.
type CustomPackageItems struct {
	CustomPackage
	Flights        []Flight        `json:"flight_items,omitempty"`
	Hotels         []Hotel         `json:"hotel_items,omitempty"`
	Entertainments []Entertainment `json:"entertainment_items,omitempty"`
}

type Booking struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"user_id"`
	Kind            BookingKind   `json:"kind"`
	TourPackageID   *uuid.UUID    `json:"tour_package,omitempty"`
	CustomPackageID *uuid.UUID    `json:"custom_package,omitempty"`
	HotelID         *uuid.UUID    `json:"hotel,omitempty"`
	FlightID        *uuid.UUID    `json:"flight,omitempty"`
	Name            string        `json:"name"`
	NumberOfPeople  int           `json:"number_of_people"`
	StartDate       time.Time     `json:"start_date"`
	Email           string        `json:"email"`
	DepartureCity   string        `json:"departure_city"`
	Status          BookingStatus `json:"status"`
	TotalPrice      float64       `json:"total_price"`
	Reservation     Reservation   `json:"reservation"`
	RefundRequested bool          `json:"refund_requested"`
	RefundStatus    RefundStatus  `json:"refund_status"`
	RefundReason    string        `json:"refund_reason,omitempty"`
	RefundAmount    float64       `json:"refund_amount,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type LoyaltyTxnType string

const (
	LoyaltyEarned     LoyaltyTxnType = "EARNED"
	LoyaltyRedeemed   LoyaltyTxnType = "REDEEMED"
	LoyaltyExpired    LoyaltyTxnType = "EXPIRED"
	LoyaltyAdjustment LoyaltyTxnType = "ADJUSTMENT"
)

type LoyaltyTxnStatus string

const (
	LoyaltyTxnActive   LoyaltyTxnStatus = "ACTIVE"
	LoyaltyTxnExpired  LoyaltyTxnStatus = "EXPIRED"
	LoyaltyTxnRedeemed LoyaltyTxnStatus = "REDEEMED"
)

// LoyaltyTransaction is an append-only ledger entry. Points are positive for
// earning and negative for redemption or clawback. The user's denormalized
// balance must equal the running sum of these entries at all times.
type LoyaltyTransaction struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"user_id"`
	BookingID   *uuid.UUID       `json:"booking,omitempty"`
	Points      int64            `json:"points"`
	Type        LoyaltyTxnType   `json:"type"`
	Description string           `json:"description"`
	ExpiryDate  *time.Time       `json:"expiry_date,omitempty"`
	Status      LoyaltyTxnStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

type LoyaltyStatus struct {
	Points           int64  `json:"points"`
	Tier             Tier   `json:"tier"`
	NextTier         string `json:"nextTier"`
	PointsToNextTier int64  `json:"pointsToNextTier"`
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "Unpaid"
	PaymentPaid   PaymentStatus = "Paid"
)

// Payment is one installment of a booking's payment plan.
type Payment struct {
	ID                uuid.UUID     `json:"id"`
	BookingID         uuid.UUID     `json:"booking"`
	InvoiceID         string        `json:"invoice_id"`
	InstallmentNumber int           `json:"installment_number"`
	Amount            float64       `json:"amount"`
	DueDate           time.Time     `json:"due_date"`
	Status            PaymentStatus `json:"status"`
	PaidAt            *time.Time    `json:"paid_at,omitempty"`
}

type Refund struct {
	ID          uuid.UUID    `json:"id"`
	BookingID   uuid.UUID    `json:"booking"`
	UserID      uuid.UUID    `json:"user_id"`
	Amount      float64      `json:"amount"`
	Reason      string       `json:"reason"`
	Status      RefundStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	ProcessedAt *time.Time   `json:"processed_at,omitempty"`
}

type User struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	LoyaltyPoints int64     `json:"loyaltyPoints"`
	Tier          Tier      `json:"membership_tier"`
	CreatedAt     time.Time `json:"created_at"`
}
