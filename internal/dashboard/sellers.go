package dashboard

import (
	"bookstore/internal/catalog"
	"bookstore/internal/model"
	"bookstore/internal/store"
	"strings"
)

type SellerStatus string

const (
	SellerStatusAll      SellerStatus = "all"
	SellerStatusApproved SellerStatus = "approved"
	SellerStatusPending  SellerStatus = "pending"
)

type SellerRow struct {
	Seller     model.User   `json:"seller"`
	Books      []model.Book `json:"books"`
	OrderCount int          `json:"orderCount"`
	Revenue    float64      `json:"revenue"`
}

type SellerList struct {
	Sellers  []SellerRow `json:"sellers"`
	Approved int         `json:"approved"`
	Pending  int         `json:"pending"`
	// Books listed by any seller in the result.
	Books int `json:"books"`
}

// Sellers lists sellers matching query (name, email or business name) and status.
func Sellers(s store.State, query string, status SellerStatus) SellerList {
	q := strings.ToLower(strings.TrimSpace(query))
	list := SellerList{Sellers: []SellerRow{}}

	for _, u := range s.Users {
		if u.Role != model.RoleSeller {
			continue
		}
		if q != "" && !sellerMatches(u, q) {
			continue
		}
		switch status {
		case SellerStatusApproved:
			if !u.Approved() {
				continue
			}
		case SellerStatusPending:
			if u.Approved() {
				continue
			}
		}

		books := catalog.BySeller(s.Books, u.ID)
		orders := OrdersForSeller(s.Orders, u.ID)
		list.Sellers = append(list.Sellers, SellerRow{
			Seller:     u,
			Books:      books,
			OrderCount: len(orders),
			Revenue:    Revenue(orders),
		})
		list.Books += len(books)
		if u.Approved() {
			list.Approved++
		} else {
			list.Pending++
		}
	}
	return list
}

func sellerMatches(u model.User, q string) bool {
	if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
		return true
	}
	return u.BusinessName != nil && strings.Contains(strings.ToLower(*u.BusinessName), q)
}

// Counts are the badges of the navigation header.
type Counts struct {
	CartItems     int `json:"cartItems"`
	WishlistItems int `json:"wishlistItems"`
}

func Header(s store.State) Counts {
	c := Counts{WishlistItems: len(s.Wishlist)}
	for _, it := range s.Cart {
		c.CartItems += it.Quantity
	}
	return c
}
