package checkout

import (
	"testing"
	"time"

	"bookstore/internal/model"
	"bookstore/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, seller string, price float64, qty int) model.CartItem {
	return model.CartItem{Book: model.Book{ID: id, SellerID: seller, Price: price}, Quantity: qty}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		cart     []model.CartItem
		subtotal float64
		shipping float64
		tax      float64
		total    float64
		count    int
	}{
		{"Empty cart still charges shipping", nil, 0, 4.99, 0, 4.99, 0},
		{"Exactly at threshold pays shipping", []model.CartItem{item("1", "s", 12.5, 2)}, 25, 4.99, 2, 31.99, 2},
		{"Above threshold ships free", []model.CartItem{item("1", "s", 13.99, 1), item("2", "s", 15.99, 1)}, 29.98, 0, 2.40, 32.38, 2},
		{"Quantity multiplies price", []model.CartItem{item("1", "s", 10, 3)}, 30, 0, 2.4, 32.4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.cart)
			assert.Equal(t, tt.count, s.ItemCount)
			assert.InDelta(t, tt.subtotal, s.Subtotal, 0.001)
			assert.InDelta(t, tt.shipping, s.Shipping, 0.001)
			assert.InDelta(t, tt.tax, s.Tax, 0.001)
			assert.InDelta(t, tt.total, s.Total, 0.001)
		})
	}
}

func TestPaymentMethod(t *testing.T) {
	assert.Equal(t, "Credit Card ending in 4532", PaymentCreditCard.Label())
	assert.Equal(t, "Debit Card ending in 7890", PaymentDebitCard.Label())
	assert.Equal(t, "Google Pay", PaymentGPay.Label())
	assert.Equal(t, "Cash on Delivery", PaymentCOD.Label())
	assert.Equal(t, "Unknown Payment Method", PaymentMethod("paypal").Label())

	for _, m := range PaymentMethods {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, PaymentMethod("paypal").Valid())
}

func signedIn() store.State {
	u := model.User{ID: "user-1", Role: model.RoleUser}
	s := store.Initial(nil, []model.User{u})
	s.Auth = model.AuthState{User: &u, IsAuthenticated: true}
	s.SelectedDeliveryAddress = &model.Address{ID: "addr-1", City: "Springfield"}
	s.Cart = []model.CartItem{item("1", "seller-2", 13.99, 1), item("2", "seller-1", 15.99, 1)}
	return s
}

func TestBuildOrder(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		s := signedIn()
		o, err := BuildOrder(s, PaymentGPay, now)
		require.NoError(t, err)

		assert.Regexp(t, `^order-[0-9a-f-]{36}$`, o.ID)
		assert.Equal(t, "user-1", o.UserID)
		assert.Equal(t, "seller-2", o.SellerID)
		assert.Equal(t, model.OrderStatusConfirmed, o.Status)
		assert.Equal(t, "Google Pay", o.PaymentMethod)
		assert.InDelta(t, 32.38, o.Total, 0.001)
		assert.Equal(t, "2024-03-01T12:00:00.000Z", o.OrderDate)
		require.NotNil(t, o.EstimatedDelivery)
		assert.Equal(t, "2024-03-08T12:00:00.000Z", *o.EstimatedDelivery)
		assert.Equal(t, "addr-1", o.ShippingAddress.ID)
		assert.Len(t, o.Items, 2)
	})

	t.Run("Order does not alias state", func(t *testing.T) {
		s := signedIn()
		o, err := BuildOrder(s, PaymentCOD, now)
		require.NoError(t, err)

		o.ShippingAddress.City = "Elsewhere"
		o.Items[0].Quantity = 9
		assert.Equal(t, "Springfield", s.SelectedDeliveryAddress.City)
		assert.Equal(t, 1, s.Cart[0].Quantity)
	})

	t.Run("Errors", func(t *testing.T) {
		anon := signedIn()
		anon.Auth = model.AuthState{}
		_, err := BuildOrder(anon, PaymentCOD, now)
		assert.ErrorIs(t, err, ErrNotAuthenticated)

		noAddr := signedIn()
		noAddr.SelectedDeliveryAddress = nil
		_, err = BuildOrder(noAddr, PaymentCOD, now)
		assert.ErrorIs(t, err, ErrNoDeliveryAddress)

		empty := signedIn()
		empty.Cart = []model.CartItem{}
		_, err = BuildOrder(empty, PaymentCOD, now)
		assert.ErrorIs(t, err, ErrCartEmpty)
	})
}
