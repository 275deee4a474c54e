package store

import (
	"bookstore/internal/model"
	"time"

	"github.com/google/uuid"
)

// isoMillis matches the timestamps the catalog and orders are seeded with.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Reducer is the transition function of the store. Besides its input it only reads the seed
// history that LOGIN filters, plus a clock and id source for new wishlist entries.
type Reducer struct {
	seedOrders   []model.Order
	seedWishlist []model.WishlistItem
	now          func() time.Time
	newID        func() string
}

type ReducerOption func(*Reducer)

func WithClock(now func() time.Time) ReducerOption {
	return func(r *Reducer) { r.now = now }
}

func WithIDGenerator(newID func() string) ReducerOption {
	return func(r *Reducer) { r.newID = newID }
}

func NewReducer(orders []model.Order, wishlist []model.WishlistItem, opts ...ReducerOption) *Reducer {
	r := &Reducer{
		seedOrders:   orders,
		seedWishlist: wishlist,
		now:          time.Now,
		newID:        func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce returns the state that follows s once a is applied. It never fails: actions whose
// preconditions do not hold, and action types it does not know, return s unchanged.
func (r *Reducer) Reduce(s State, a Action) State {
	switch act := a.(type) {
	case Login:
		return r.login(s, act.User)

	case Logout:
		s.Auth = model.AuthState{}
		s.Cart = []model.CartItem{}
		s.Orders = []model.Order{}
		s.Wishlist = []model.WishlistItem{}
		s.SelectedDeliveryAddress = nil
		return s

	case SetLoading:
		s.Auth.IsLoading = act.Loading
		return s

	case AddToCart:
		for _, item := range s.Cart {
			if item.Book.ID == act.Book.ID {
				s.Cart = mapSlice(s.Cart, func(it model.CartItem) model.CartItem {
					if it.Book.ID == act.Book.ID {
						it.Quantity++
					}
					return it
				})
				return s
			}
		}
		s.Cart = appendCopy(s.Cart, model.CartItem{Book: act.Book, Quantity: 1})
		return s

	case RemoveFromCart:
		s.Cart = removeCartItem(s.Cart, act.BookID)
		return s

	case UpdateCartQuantity:
		if act.Quantity <= 0 {
			s.Cart = removeCartItem(s.Cart, act.BookID)
			return s
		}
		s.Cart = mapSlice(s.Cart, func(it model.CartItem) model.CartItem {
			if it.Book.ID == act.BookID {
				it.Quantity = act.Quantity
			}
			return it
		})
		return s

	case ClearCart:
		s.Cart = []model.CartItem{}
		return s

	case AddToWishlist:
		if s.Auth.User == nil {
			return s
		}
		s.Wishlist = appendCopy(s.Wishlist, model.WishlistItem{
			ID:        "wishlist-" + r.newID(),
			UserID:    s.Auth.User.ID,
			Book:      act.Book,
			AddedDate: r.now().UTC().Format(isoMillis),
		})
		return s

	case RemoveFromWishlist:
		s.Wishlist = filterSlice(s.Wishlist, func(w model.WishlistItem) bool {
			return w.Book.ID != act.BookID
		})
		return s

	case SetSearchQuery:
		s.SearchQuery = act.Query
		return s

	case SetSelectedGenre:
		s.SelectedGenre = act.Genre
		return s

	case PlaceOrder:
		orders := make([]model.Order, 0, len(s.Orders)+1)
		orders = append(orders, act.Order)
		s.Orders = append(orders, s.Orders...)
		s.Cart = []model.CartItem{}
		return s

	case UpdateOrderStatus:
		s.Orders = mapSlice(s.Orders, func(o model.Order) model.Order {
			if o.ID == act.OrderID {
				o.Status = act.Status
			}
			return o
		})
		return s

	case SetDeliveryAddress:
		if s.Auth.User == nil {
			return s
		}
		addr := act.Address
		s.SelectedDeliveryAddress = &addr
		return s

	case AddAddress:
		return withUser(s, func(u model.User) model.User {
			u.Addresses = appendCopy(u.Addresses, act.Address)
			return u
		})

	case UpdateAddress:
		if s.Auth.User == nil {
			return s
		}
		s = withUser(s, func(u model.User) model.User {
			u.Addresses = mapSlice(u.Addresses, func(addr model.Address) model.Address {
				if addr.ID == act.Address.ID {
					return act.Address
				}
				return addr
			})
			return u
		})
		if s.SelectedDeliveryAddress != nil && s.SelectedDeliveryAddress.ID == act.Address.ID {
			addr := act.Address
			s.SelectedDeliveryAddress = &addr
		}
		return s

	case DeleteAddress:
		if s.Auth.User == nil {
			return s
		}
		s = withUser(s, func(u model.User) model.User {
			u.Addresses = filterSlice(u.Addresses, func(addr model.Address) bool {
				return addr.ID != act.AddressID
			})
			return u
		})
		if s.SelectedDeliveryAddress != nil && s.SelectedDeliveryAddress.ID == act.AddressID {
			s.SelectedDeliveryAddress = nil
		}
		return s

	case SetDefaultAddress:
		if s.Auth.User == nil {
			return s
		}
		s = withUser(s, func(u model.User) model.User {
			id := act.AddressID
			u.DefaultAddressID = &id
			// Rewrite every flag so no earlier default survives.
			u.Addresses = mapSlice(u.Addresses, func(addr model.Address) model.Address {
				addr.IsDefault = addr.ID == act.AddressID
				return addr
			})
			return u
		})
		if s.SelectedDeliveryAddress != nil {
			if addr, ok := s.Auth.User.FindAddress(s.SelectedDeliveryAddress.ID); ok {
				s.SelectedDeliveryAddress = &addr
			}
		}
		return s

	case AddBook:
		s.Books = appendCopy(s.Books, act.Book)
		return s

	case UpdateBook:
		s.Books = mapSlice(s.Books, func(b model.Book) model.Book {
			if b.ID == act.Book.ID {
				return act.Book
			}
			return b
		})
		return s

	case DeleteBook:
		s.Books = filterSlice(s.Books, func(b model.Book) bool { return b.ID != act.BookID })
		return s

	case ApproveSeller:
		s.Users = mapSlice(s.Users, func(u model.User) model.User {
			if u.ID == act.UserID {
				approved := true
				u.IsApproved = &approved
			}
			return u
		})
		return s

	case UpdateUser:
		s.Users = mapSlice(s.Users, func(u model.User) model.User {
			if u.ID == act.User.ID {
				return act.User
			}
			return u
		})
		return s

	case DeleteUser:
		s.Users = filterSlice(s.Users, func(u model.User) bool { return u.ID != act.UserID })
		return s

	default:
		return s
	}
}

func (r *Reducer) login(s State, u model.User) State {
	var orders []model.Order
	switch u.Role {
	case model.RoleUser:
		orders = filterSlice(r.seedOrders, func(o model.Order) bool { return o.UserID == u.ID })
	case model.RoleSeller:
		orders = filterSlice(r.seedOrders, func(o model.Order) bool { return o.SellerID == u.ID })
	case model.RoleAdmin:
		orders = append([]model.Order{}, r.seedOrders...)
	default:
		orders = []model.Order{}
	}

	wishlist := []model.WishlistItem{}
	if u.Role == model.RoleUser {
		wishlist = filterSlice(r.seedWishlist, func(w model.WishlistItem) bool { return w.UserID == u.ID })
	}

	var selected *model.Address
	if u.DefaultAddressID != nil {
		if addr, ok := u.FindAddress(*u.DefaultAddressID); ok {
			selected = &addr
		}
	}

	user := u
	s.Auth = model.AuthState{User: &user, IsAuthenticated: true}
	s.Orders = orders
	s.Wishlist = wishlist
	s.SelectedDeliveryAddress = selected
	return s
}

// withUser swaps the logged-in user for a rewritten copy. No-op when nobody is logged in.
func withUser(s State, rewrite func(model.User) model.User) State {
	if s.Auth.User == nil {
		return s
	}
	u := rewrite(*s.Auth.User)
	s.Auth.User = &u
	return s
}

func removeCartItem(cart []model.CartItem, bookID string) []model.CartItem {
	return filterSlice(cart, func(it model.CartItem) bool { return it.Book.ID != bookID })
}

// The helpers below always allocate, so a result never aliases the backing array of its input.

func appendCopy[T any](in []T, v T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return append(out, v)
}

func mapSlice[T any](in []T, f func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func filterSlice[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
