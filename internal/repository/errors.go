package repository

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrNoSeats            = errors.New("no seats available")
	ErrNoRooms            = errors.New("no rooms available")
	ErrFullyBooked        = errors.New("package is fully booked")
	ErrAlreadyCancelled   = errors.New("booking already cancelled")
	ErrInsufficientPoints = errors.New("insufficient points")
)
