package checkout

import "errors"

var (
	// -- Authentication/Authorization --
	ErrNotAuthenticated = errors.New("user not authenticated")

	// -- Validation & Input --
	ErrNoDeliveryAddress    = errors.New("please select a delivery address")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)
