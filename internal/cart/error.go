package cart

import "errors"

var (
	// -- Validation & Input --
	ErrIndexOutOfRange = errors.New("cart index out of range")

	// -- Resource State --
	ErrCartEmpty = errors.New("cart is already empty")
)
