package api

import (
	"bookstore/internal/dashboard"
	"bookstore/internal/logger"
	"bookstore/internal/model"
	"bookstore/internal/store"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) adminRoutes(r chi.Router) {
	r.Get("/dashboard", h.adminDashboard)
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})
	r.Route("/sellers", func(r chi.Router) {
		r.Get("/", h.listSellers)
		r.Post("/{id}/approve", h.approveSeller)
	})
	r.Get("/orders", h.listOrders)
	r.Put("/orders/{id}/status", h.updateAdminOrderStatus)
}

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dashboard.ForAdmin(st.State()))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	role := model.Role(r.URL.Query().Get("role"))
	if role != "" && !role.Valid() {
		writeError(r.Context(), w, fmt.Errorf("%w: %q", errInvalidRole, role))
		return
	}
	writeJSON(w, http.StatusOK, dashboard.UsersByRole(st.State().Users, role, r.URL.Query().Get("q")))
}

type userUpdateRequest struct {
	Name         *string     `json:"name"`
	Email        *string     `json:"email"`
	Role         *model.Role `json:"role"`
	BusinessName *string     `json:"businessName"`
	IsApproved   *bool       `json:"isApproved"`
}

func (req userUpdateRequest) apply(u model.User) (model.User, error) {
	if req.Role != nil {
		if !req.Role.Valid() {
			return u, fmt.Errorf("%w: %q", errInvalidRole, *req.Role)
		}
		u.Role = *req.Role
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.BusinessName != nil {
		u.BusinessName = req.BusinessName
	}
	if req.IsApproved != nil {
		u.IsApproved = req.IsApproved
	}
	return u, nil
}

func (h *Handler) findUser(w http.ResponseWriter, r *http.Request, s store.State) (model.User, bool) {
	id := chi.URLParam(r, "id")
	u, ok := s.FindUser(id)
	if !ok {
		writeError(r.Context(), w, fmt.Errorf("user %q: %w", id, errNotFound))
	}
	return u, ok
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	existing, ok := h.findUser(w, r, st.State())
	if !ok {
		return
	}
	var req userUpdateRequest
	if !decode(w, r, &req) {
		return
	}

	updated, err := req.apply(existing)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	st.Dispatch(r.Context(), store.UpdateUser{User: updated})
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	u, ok := h.findUser(w, r, st.State())
	if !ok {
		return
	}

	st.Dispatch(r.Context(), store.DeleteUser{UserID: u.ID})
	logger.FromCtx(r.Context()).Info("user deleted", zap.String("user_id", u.ID))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSellers(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	status := dashboard.SellerStatus(r.URL.Query().Get("status"))
	switch status {
	case "":
		status = dashboard.SellerStatusAll
	case dashboard.SellerStatusAll, dashboard.SellerStatusApproved, dashboard.SellerStatusPending:
	default:
		writeError(r.Context(), w, fmt.Errorf("%w: %q", errInvalidSellerStatus, status))
		return
	}
	writeJSON(w, http.StatusOK, dashboard.Sellers(st.State(), r.URL.Query().Get("q"), status))
}

func (h *Handler) approveSeller(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	u, ok := h.findUser(w, r, st.State())
	if !ok {
		return
	}
	if u.Role != model.RoleSeller {
		writeError(r.Context(), w, fmt.Errorf("seller %q: %w", u.ID, errNotFound))
		return
	}

	s := st.Dispatch(r.Context(), store.ApproveSeller{UserID: u.ID})
	approved, _ := s.FindUser(u.ID)
	logger.FromCtx(r.Context()).Info("seller approved", zap.String("seller_id", u.ID))
	writeJSON(w, http.StatusOK, approved)
}

func (h *Handler) updateAdminOrderStatus(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	h.updateOrderStatus(w, r, st, func(model.Order) bool { return true })
}
