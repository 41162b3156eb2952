package httpgin

import (
	"time"

	"github.com/google/uuid"

	"github.com/okatsune/voyago/internal/domain"
)

type CreateCustomPackageRequest struct {
	Flights        []string `json:"flights"`
	Hotels         []string `json:"hotels"`
	Entertainments []string `json:"entertainments"`
}

type CreateCustomPackageResponse struct {
	Package  domain.CustomPackage `json:"package"`
	Warnings []string             `json:"warnings"`
}

type CreateBookingRequest struct {
	PackageID      *string `json:"package_id"`
	HotelID        *string `json:"hotel_id"`
	FlightID       *string `json:"flight_id"`
	Name           string  `json:"name" binding:"required"`
	NumberOfPeople int     `json:"number_of_people"`
	StartDate      string  `json:"start_date"`
	Email          string  `json:"email" binding:"required,email"`
	DepartureCity  string  `json:"departure_city"`
	Rooms          int     `json:"rooms"`
}

type RefundRequestBody struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	Reason    string `json:"reason" binding:"required"`
}

type RedeemRequest struct {
	Points      int64  `json:"points" binding:"required,gt=0"`
	Description string `json:"description"`
}

type ConfirmPaymentResponse struct {
	BookingID string `json:"booking_id"`
	Settled   int64  `json:"settled"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func parseUUIDs(in []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(in))
	for _, s := range in {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
