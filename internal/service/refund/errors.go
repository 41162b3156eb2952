package refund

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrForbidden        = errors.New("booking belongs to another user")
	ErrNotRefundable    = errors.New("only confirmed bookings can be refunded")
	ErrAlreadyProcessed = errors.New("refund already requested or processed")
)
