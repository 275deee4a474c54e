package api

import (
	"bookstore/internal/catalog"
	"bookstore/internal/model"
	"bookstore/internal/store"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) wishlistRoutes(r chi.Router) {
	r.Get("/", h.getWishlist)
	r.Post("/", h.addToWishlist)
	r.Delete("/{bookId}", h.removeFromWishlist)
}

func (h *Handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, st.State().Wishlist)
}

// addToWishlist is idempotent: a book already on the list is not added twice.
func (h *Handler) addToWishlist(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	var req bookRef
	if !decode(w, r, &req) {
		return
	}

	s := st.State()
	b, found := s.FindBook(req.BookID)
	if !found {
		writeError(r.Context(), w, catalog.ErrBookNotFound)
		return
	}
	if s.InWishlist(b.ID) {
		writeJSON(w, http.StatusOK, s.Wishlist)
		return
	}

	s = st.Dispatch(r.Context(), store.AddToWishlist{Book: b})
	writeJSON(w, http.StatusCreated, s.Wishlist)
}

func (h *Handler) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.Dispatch(r.Context(), store.RemoveFromWishlist{BookID: chi.URLParam(r, "bookId")})
	writeJSON(w, http.StatusOK, s.Wishlist)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, st.State().Orders)
}

// signedIn returns the session user. Only used behind RequireRole/RequireLogin.
func signedIn(s store.State) model.User {
	u, _ := s.CurrentUser()
	return u
}
