package query

import "errors"

var (
	ErrFlightNotFound        = errors.New("flight not found")
	ErrHotelNotFound         = errors.New("hotel not found")
	ErrEntertainmentNotFound = errors.New("entertainment not found")
	ErrTourPackageNotFound   = errors.New("tour package not found")
	ErrPackageNotFound       = errors.New("custom package not found")
)
