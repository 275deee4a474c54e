package address

import "errors"

var (
	// -- Resource State --
	ErrAddressNotFound    = errors.New("address not found")
	ErrLastAddress        = errors.New("cannot delete the only address")
	ErrInvalidAddressForm = errors.New("invalid address")
)
