package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleSeller.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("staff").Valid())
	assert.False(t, Role("").Valid())
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("refunded").Valid())
}

func TestUserHelpers(t *testing.T) {
	business := "Page Turners"
	approved := true
	u := User{
		Name:         "Sam Seller",
		BusinessName: &business,
		IsApproved:   &approved,
		Addresses: []Address{
			{ID: "a1", Label: "Home"},
			{ID: "a2", Label: "Work"},
		},
	}

	t.Run("FindAddress", func(t *testing.T) {
		a, ok := u.FindAddress("a2")
		assert.True(t, ok)
		assert.Equal(t, "Work", a.Label)

		_, ok = u.FindAddress("missing")
		assert.False(t, ok)
	})

	t.Run("DisplayName", func(t *testing.T) {
		assert.Equal(t, "Page Turners", u.DisplayName())
		assert.Equal(t, "Plain", User{Name: "Plain"}.DisplayName())
	})

	t.Run("Approved", func(t *testing.T) {
		assert.True(t, u.Approved())
		assert.False(t, User{}.Approved())
	})
}
