package api

import (
	"net/http"
	"testing"

	"bookstore/internal/model"
	"bookstore/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlist(t *testing.T) {
	c := newClient(t, newTestRouter(t, nil))

	t.Run("Requires login", func(t *testing.T) {
		rr := c.do(http.MethodGet, "/api/wishlist", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "/auth", rr.Header().Get("Location"))
	})

	c.login("alice@example.com", "password123")

	t.Run("Add once", func(t *testing.T) {
		rr := c.do(http.MethodPost, "/api/wishlist", map[string]string{"bookId": "3"})
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Len(t, decodeBody[[]model.WishlistItem](t, rr), 3)

		rr = c.do(http.MethodPost, "/api/wishlist", map[string]string{"bookId": "3"})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeBody[[]model.WishlistItem](t, rr), 3)

		book := decodeBody[bookResponse](t, c.do(http.MethodGet, "/api/books/3", nil))
		assert.True(t, book.InWishlist)
	})

	t.Run("Remove", func(t *testing.T) {
		rr := c.do(http.MethodDelete, "/api/wishlist/3", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeBody[[]model.WishlistItem](t, rr), 2)
	})

	t.Run("Unknown book", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/api/wishlist", map[string]string{"bookId": "x"}).Code)
	})
}

func validAddress() map[string]string {
	return map[string]string{
		"label":   "Cabin",
		"name":    "Alice Reader",
		"street":  "9 Lake Rd",
		"city":    "Tahoe City",
		"state":   "CA",
		"zipCode": "96145",
		"country": "US",
	}
}

func TestAddresses(t *testing.T) {
	c := newClient(t, newTestRouter(t, nil))
	c.login("alice@example.com", "password123")

	list := decodeBody[addressesResponse](t, c.do(http.MethodGet, "/api/addresses", nil))
	require.Len(t, list.Addresses, 2)
	require.NotNil(t, list.DefaultAddressID)
	assert.Equal(t, "addr-1", *list.DefaultAddressID)

	var created model.Address
	t.Run("Create", func(t *testing.T) {
		rr := c.do(http.MethodPost, "/api/addresses", validAddress())
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		list := decodeBody[addressesResponse](t, rr)
		require.Len(t, list.Addresses, 3)
		created = list.Addresses[2]
		assert.Equal(t, "Cabin", created.Label)
		assert.False(t, created.IsDefault)
	})

	t.Run("Invalid form lists fields", func(t *testing.T) {
		form := validAddress()
		form["zipCode"] = "ABC"
		form["city"] = ""
		rr := c.do(http.MethodPost, "/api/addresses", form)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		body := decodeBody[utils.ErrorBody](t, rr)
		assert.Contains(t, body.Fields, "zipCode")
		assert.Contains(t, body.Fields, "city")
	})

	t.Run("Update keeps id", func(t *testing.T) {
		form := validAddress()
		form["label"] = "Lake house"
		rr := c.do(http.MethodPut, "/api/addresses/"+created.ID, form)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		list := decodeBody[addressesResponse](t, rr)
		assert.Equal(t, created.ID, list.Addresses[2].ID)
		assert.Equal(t, "Lake house", list.Addresses[2].Label)
	})

	t.Run("Set default", func(t *testing.T) {
		rr := c.do(http.MethodPut, "/api/addresses/"+created.ID+"/default", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		list := decodeBody[addressesResponse](t, rr)
		defaults := 0
		for _, a := range list.Addresses {
			if a.IsDefault {
				defaults++
				assert.Equal(t, created.ID, a.ID)
			}
		}
		assert.Equal(t, 1, defaults)
	})

	t.Run("Delivery address", func(t *testing.T) {
		rr := c.do(http.MethodPut, "/api/delivery-address", map[string]string{"addressId": "addr-2"})
		require.Equal(t, http.StatusOK, rr.Code)
		list := decodeBody[addressesResponse](t, rr)
		require.NotNil(t, list.Selected)
		assert.Equal(t, "addr-2", list.Selected.ID)

		rr = c.do(http.MethodPut, "/api/delivery-address", map[string]string{"addressId": "addr-3"})
		assert.Equal(t, http.StatusNotFound, rr.Code, "another user's address")
	})

	t.Run("Delete clears the selection", func(t *testing.T) {
		rr := c.do(http.MethodDelete, "/api/addresses/addr-2", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		list := decodeBody[addressesResponse](t, rr)
		assert.Len(t, list.Addresses, 2)
		assert.Nil(t, list.Selected)
	})

	t.Run("Last address cannot be deleted", func(t *testing.T) {
		require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/api/addresses/addr-1", nil).Code)

		rr := c.do(http.MethodDelete, "/api/addresses/"+created.ID, nil)
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, http.StatusNotFound, c.do(http.MethodDelete, "/api/addresses/addr-9", nil).Code)
	})
}

func TestCountries(t *testing.T) {
	c := newClient(t, newTestRouter(t, nil))

	rr := c.do(http.MethodGet, "/api/countries/CA/states", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[statesResponse](t, rr)
	assert.NotEmpty(t, resp.States)
	assert.Equal(t, "Province", resp.StateLabel)

	resp = decodeBody[statesResponse](t, c.do(http.MethodGet, "/api/countries/DE/states", nil))
	assert.Empty(t, resp.States)
	assert.NotNil(t, resp.States)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/countries/ZZ/states", nil).Code)
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/countries", nil).Code)
}
