package api

import (
	"bookstore/internal/catalog"
	"bookstore/internal/checkout"
	"bookstore/internal/dashboard"
	"bookstore/internal/logger"
	"bookstore/internal/model"
	"bookstore/internal/store"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) cartRoutes(r chi.Router) {
	r.Get("/", h.getCart)
	r.Post("/", h.addToCart)
	r.Delete("/", h.clearCart)
	r.Put("/{bookId}", h.updateCartQuantity)
	r.Delete("/{bookId}", h.removeFromCart)
}

type cartResponse struct {
	Items   []model.CartItem `json:"items"`
	Summary checkout.Summary `json:"summary"`
	Counts  dashboard.Counts `json:"counts"`
}

func cartView(s store.State) cartResponse {
	return cartResponse{
		Items:   s.Cart,
		Summary: checkout.Summarize(s.Cart),
		Counts:  dashboard.Header(s),
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, cartView(st.State()))
}

type bookRef struct {
	BookID string `json:"bookId"`
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	var req bookRef
	if !decode(w, r, &req) {
		return
	}

	b, found := st.State().FindBook(req.BookID)
	if !found {
		writeError(r.Context(), w, catalog.ErrBookNotFound)
		return
	}
	s := st.Dispatch(r.Context(), store.AddToCart{Book: b})
	writeJSON(w, http.StatusOK, cartView(s))
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// updateCartQuantity drops the line when quantity is zero or less.
func (h *Handler) updateCartQuantity(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	var req quantityRequest
	if !decode(w, r, &req) {
		return
	}

	bookID := chi.URLParam(r, "bookId")
	if !inCart(st.State(), bookID) {
		writeError(r.Context(), w, fmt.Errorf("cart item %q: %w", bookID, errNotFound))
		return
	}
	s := st.Dispatch(r.Context(), store.UpdateCartQuantity{BookID: bookID, Quantity: req.Quantity})
	writeJSON(w, http.StatusOK, cartView(s))
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.Dispatch(r.Context(), store.RemoveFromCart{BookID: chi.URLParam(r, "bookId")})
	writeJSON(w, http.StatusOK, cartView(s))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.Dispatch(r.Context(), store.ClearCart{})
	writeJSON(w, http.StatusOK, cartView(s))
}

func inCart(s store.State, bookID string) bool {
	for _, it := range s.Cart {
		if it.Book.ID == bookID {
			return true
		}
	}
	return false
}

type checkoutRequest struct {
	PaymentMethod checkout.PaymentMethod `json:"paymentMethod"`
}

type checkoutResponse struct {
	Order  model.Order   `json:"order"`
	Orders []model.Order `json:"orders"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromCtx(ctx).With(zap.String("handler", "checkout"))

	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	var req checkoutRequest
	if !decode(w, r, &req) {
		return
	}
	if !req.PaymentMethod.Valid() {
		writeError(ctx, w, fmt.Errorf("%w: %q", checkout.ErrUnknownPaymentMethod, req.PaymentMethod))
		return
	}

	order, err := checkout.BuildOrder(st.State(), req.PaymentMethod, h.now())
	if err != nil {
		log.Info("checkout rejected", zap.Error(err))
		writeError(ctx, w, err)
		return
	}

	s := st.Dispatch(ctx, store.PlaceOrder{Order: order})
	log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total),
	)
	writeJSON(w, http.StatusCreated, checkoutResponse{Order: order, Orders: s.Orders})
}
