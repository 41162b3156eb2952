package inventory

import (
	"errors"
	"fmt"
)

// ErrInsufficientInventory is the match target for every reservation
// shortfall; UnavailableError wraps it with the concrete item.
var ErrInsufficientInventory = errors.New("insufficient inventory")

// UnavailableError names the item that could not be reserved.
type UnavailableError struct {
	Kind string // "flight", "hotel", "entertainment" or "tour package"
	Name string
}

func (e *UnavailableError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s is unavailable", e.Kind)
	}
	return fmt.Sprintf("%s %q is unavailable", e.Kind, e.Name)
}

func (e *UnavailableError) Unwrap() error { return ErrInsufficientInventory }
