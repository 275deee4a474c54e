package api

import (
	"bookstore/internal/catalog"
	"bookstore/internal/dashboard"
	"bookstore/internal/logger"
	"bookstore/internal/model"
	"bookstore/internal/store"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) sellerRoutes(r chi.Router) {
	r.Get("/dashboard", h.sellerDashboard)
	r.Route("/books", func(r chi.Router) {
		r.Get("/", h.listSellerBooks)
		r.Post("/", h.createBook)
		r.Put("/{id}", h.updateBook)
		r.Delete("/{id}", h.deleteBook)
	})
	r.Put("/orders/{id}/status", h.updateSellerOrderStatus)
}

type sellerDashboardResponse struct {
	dashboard.SellerStats
	Approved bool   `json:"approved"`
	Notice   string `json:"notice,omitempty"`
}

func (h *Handler) sellerDashboard(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.State()
	u := signedIn(s)

	resp := sellerDashboardResponse{
		SellerStats: dashboard.ForSeller(s, u.ID),
		Approved:    u.Approved(),
	}
	if !resp.Approved {
		resp.Notice = "Your seller account is pending approval from admin."
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) listSellerBooks(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.State()
	writeJSON(w, http.StatusOK, catalog.BySeller(s.Books, signedIn(s).ID))
}

func (h *Handler) readBookForm(w http.ResponseWriter, r *http.Request) (catalog.BookForm, bool) {
	var form catalog.BookForm
	if !decode(w, r, &form) {
		return form, false
	}
	if err := form.Validate(); err != nil {
		writeError(r.Context(), w, err)
		return form, false
	}
	return form, true
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	form, ok := h.readBookForm(w, r)
	if !ok {
		return
	}

	seller := signedIn(st.State())
	book := form.Build(seller, nil, h.now())
	st.Dispatch(ctx, store.AddBook{Book: book})

	logger.FromCtx(ctx).Info("book listed", zap.String("book_id", book.ID), zap.String("seller_id", seller.ID))
	writeJSON(w, http.StatusCreated, book)
}

// updateBook and deleteBook only touch the caller's own listings.
func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.State()
	seller := signedIn(s)

	existing, err := catalog.OwnedBy(s.Books, chi.URLParam(r, "id"), seller.ID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	form, ok := h.readBookForm(w, r)
	if !ok {
		return
	}

	book := form.Build(seller, &existing, h.now())
	st.Dispatch(r.Context(), store.UpdateBook{Book: book})
	writeJSON(w, http.StatusOK, book)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.State()
	seller := signedIn(s)

	book, err := catalog.OwnedBy(s.Books, chi.URLParam(r, "id"), seller.ID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	s = st.Dispatch(r.Context(), store.DeleteBook{BookID: book.ID})
	writeJSON(w, http.StatusOK, catalog.BySeller(s.Books, seller.ID))
}

type statusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func (h *Handler) updateSellerOrderStatus(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.State()
	sellerID := signedIn(s).ID

	h.updateOrderStatus(w, r, st, func(o model.Order) bool { return o.SellerID == sellerID })
}

// updateOrderStatus changes the status of an order visible to the caller.
func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request, st *store.Store, visible func(model.Order) bool) {
	ctx := r.Context()
	var req statusRequest
	if !decode(w, r, &req) {
		return
	}
	if !req.Status.Valid() {
		writeError(ctx, w, fmt.Errorf("%w: %q", errInvalidStatus, req.Status))
		return
	}

	id := chi.URLParam(r, "id")
	o, found := st.State().FindOrder(id)
	if !found || !visible(o) {
		writeError(ctx, w, fmt.Errorf("order %q: %w", id, errNotFound))
		return
	}

	s := st.Dispatch(ctx, store.UpdateOrderStatus{OrderID: id, Status: req.Status})
	o, _ = s.FindOrder(id)
	logger.FromCtx(ctx).Info("order status updated", zap.String("order_id", id), zap.String("status", string(req.Status)))
	writeJSON(w, http.StatusOK, o)
}
