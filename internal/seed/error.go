package seed

import "errors"

var (
	// -- Decoding --
	ErrReadSeedFile   = errors.New("failed to read seed file")
	ErrDecodeSeedFile = errors.New("failed to decode seed file")

	// -- Referential integrity --
	ErrUnknownCredentialUser = errors.New("demo credential references unknown user")
	ErrUnknownOrderBook      = errors.New("order item references unknown book")
	ErrUnknownOrderAddress   = errors.New("order references unknown shipping address")
	ErrUnknownWishlistBook   = errors.New("wishlist entry references unknown book")
)
