package api

import (
	"bookstore/internal/catalog"
	"bookstore/internal/model"
	"bookstore/internal/store"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const homeSectionSize = 4

func (h *Handler) bookRoutes(r chi.Router) {
	r.Get("/", h.listBooks)
	r.Get("/featured", h.featuredBooks)
	r.Get("/bestsellers", h.bestsellerBooks)
	r.Get("/{id}", h.getBook)
}

type bookListResponse struct {
	Books []model.Book       `json:"books"`
	Total int                `json:"total"`
	Query string             `json:"query"`
	Genre string             `json:"genre"`
	Sort  catalog.SortOption `json:"sort"`
}

// listBooks filters by the q and genre parameters, or by the session's stored filters when a
// parameter is absent.
func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.State()
	params := r.URL.Query()

	query := s.SearchQuery
	if params.Has("q") {
		query = params.Get("q")
	}
	genre := s.SelectedGenre
	if params.Has("genre") {
		genre = params.Get("genre")
	}
	sortBy := catalog.SortFeatured
	if params.Has("sort") {
		sortBy = catalog.SortOption(params.Get("sort"))
		if !sortBy.Valid() {
			writeError(r.Context(), w, fmt.Errorf("%w: %q", errInvalidSort, sortBy))
			return
		}
	}

	books := catalog.Sort(catalog.Filter(s.Books, query, genre), sortBy)
	writeJSON(w, http.StatusOK, bookListResponse{
		Books: books,
		Total: len(books),
		Query: query,
		Genre: genre,
		Sort:  sortBy,
	})
}

func (h *Handler) featuredBooks(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, catalog.Featured(st.State().Books, homeSectionSize))
}

func (h *Handler) bestsellerBooks(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, catalog.Bestsellers(st.State().Books, homeSectionSize))
}

type bookResponse struct {
	Book       model.Book `json:"book"`
	InWishlist bool       `json:"inWishlist"`
	InCart     int        `json:"inCart"`
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.State()

	b, found := s.FindBook(chi.URLParam(r, "id"))
	if !found {
		writeError(r.Context(), w, catalog.ErrBookNotFound)
		return
	}
	resp := bookResponse{Book: b, InWishlist: s.InWishlist(b.ID)}
	for _, it := range s.Cart {
		if it.Book.ID == b.ID {
			resp.InCart = it.Quantity
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) listGenres(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, catalog.Genres(st.State().Books))
}

type filtersRequest struct {
	Query *string `json:"query"`
	Genre *string `json:"genre"`
}

func (h *Handler) setFilters(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	var req filtersRequest
	if !decode(w, r, &req) {
		return
	}

	var actions []store.Action
	if req.Query != nil {
		actions = append(actions, store.SetSearchQuery{Query: *req.Query})
	}
	if req.Genre != nil {
		actions = append(actions, store.SetSelectedGenre{Genre: *req.Genre})
	}
	s := st.Dispatch(r.Context(), actions...)

	writeJSON(w, http.StatusOK, map[string]string{
		"searchQuery":   s.SearchQuery,
		"selectedGenre": s.SelectedGenre,
	})
}
