// Package checkout prices the cart and turns it into an order.
package checkout

import (
	"bookstore/internal/model"
	"bookstore/internal/seed"
	"bookstore/internal/store"
	"time"

	"github.com/google/uuid"
)

const (
	deliveryWindow = 7 * 24 * time.Hour
	isoMillis      = "2006-01-02T15:04:05.000Z07:00"
)

// BuildOrder snapshots the cart of the signed-in user into a confirmed order shipped to the
// selected delivery address. It does not dispatch anything.
func BuildOrder(s store.State, method PaymentMethod, now time.Time) (model.Order, error) {
	u, ok := s.CurrentUser()
	if !ok {
		return model.Order{}, ErrNotAuthenticated
	}
	if s.SelectedDeliveryAddress == nil {
		return model.Order{}, ErrNoDeliveryAddress
	}
	if len(s.Cart) == 0 {
		return model.Order{}, ErrCartEmpty
	}

	items := make([]model.CartItem, len(s.Cart))
	for i, it := range s.Cart {
		items[i] = model.CartItem{Book: seed.CopyBook(it.Book), Quantity: it.Quantity}
	}
	eta := now.Add(deliveryWindow).UTC().Format(isoMillis)

	return model.Order{
		ID:                "order-" + uuid.NewString(),
		UserID:            u.ID,
		SellerID:          items[0].Book.SellerID,
		Items:             items,
		Total:             Summarize(items).Total,
		Status:            model.OrderStatusConfirmed,
		OrderDate:         now.UTC().Format(isoMillis),
		EstimatedDelivery: &eta,
		ShippingAddress:   seed.CopyAddress(*s.SelectedDeliveryAddress),
		PaymentMethod:     method.Label(),
	}, nil
}
