package payments

import "errors"

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrAlreadyPaid        = errors.New("installment already paid")
	ErrInvoiceUnavailable = errors.New("invoice is only available for paid installments")
)
