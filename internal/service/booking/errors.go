package booking

import "errors"

var (
	ErrNoTarget         = errors.New("booking must reference a package, hotel or flight")
	ErrPackageNotFound  = errors.New("package not found")
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrFlightNotFound   = errors.New("flight not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)
