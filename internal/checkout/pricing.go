package checkout

import (
	"bookstore/internal/model"
	"math"
)

const (
	FreeShippingThreshold = 25.0
	ShippingFee           = 4.99
	TaxRate               = 0.08
)

type Summary struct {
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

// Summarize prices a cart. Shipping is free strictly above the threshold.
func Summarize(cart []model.CartItem) Summary {
	var s Summary
	for _, it := range cart {
		s.ItemCount += it.Quantity
		s.Subtotal += it.Book.Price * float64(it.Quantity)
	}
	if s.Subtotal <= FreeShippingThreshold {
		s.Shipping = ShippingFee
	}
	s.Tax = s.Subtotal * TaxRate
	s.Total = s.Subtotal + s.Shipping + s.Tax

	s.Subtotal = cents(s.Subtotal)
	s.Tax = cents(s.Tax)
	s.Total = cents(s.Total)
	return s
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}
