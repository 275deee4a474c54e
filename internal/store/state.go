package store

import "bookstore/internal/model"

// AllGenres is the genre filter value that disables genre filtering.
const AllGenres = "All"

// State is replaced, never edited: every transition builds a new value and shares the slices it
// did not touch with its predecessor.
type State struct {
	Auth                    model.AuthState      `json:"auth"`
	Books                   []model.Book         `json:"books"`
	Cart                    []model.CartItem     `json:"cart"`
	Wishlist                []model.WishlistItem `json:"wishlist"`
	Orders                  []model.Order        `json:"orders"`
	Users                   []model.User         `json:"users"`
	SearchQuery             string               `json:"searchQuery"`
	SelectedGenre           string               `json:"selectedGenre"`
	SelectedDeliveryAddress *model.Address       `json:"selectedDeliveryAddress"`
}

// Initial is the anonymous state a session starts with.
func Initial(books []model.Book, users []model.User) State {
	return State{
		Books:         books,
		Cart:          []model.CartItem{},
		Wishlist:      []model.WishlistItem{},
		Orders:        []model.Order{},
		Users:         users,
		SelectedGenre: AllGenres,
	}
}

// CurrentUser returns the logged-in user, if any.
func (s State) CurrentUser() (model.User, bool) {
	if !s.Auth.IsAuthenticated || s.Auth.User == nil {
		return model.User{}, false
	}
	return *s.Auth.User, true
}

// FindBook looks a book up in the live catalog.
func (s State) FindBook(id string) (model.Book, bool) {
	for _, b := range s.Books {
		if b.ID == id {
			return b, true
		}
	}
	return model.Book{}, false
}

func (s State) FindUser(id string) (model.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

func (s State) FindOrder(id string) (model.Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// InWishlist reports whether the book already has a wishlist entry.
func (s State) InWishlist(bookID string) bool {
	for _, w := range s.Wishlist {
		if w.Book.ID == bookID {
			return true
		}
	}
	return false
}
