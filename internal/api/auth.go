package api

import (
	"bookstore/internal/dashboard"
	"bookstore/internal/guard"
	"bookstore/internal/logger"
	"bookstore/internal/middleware"
	"bookstore/internal/model"
	"bookstore/internal/store"
	"bookstore/internal/user"
	"bookstore/internal/utils"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) authRoutes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/register", h.register)
	r.Post("/logout", h.logout)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User     model.User      `json:"user"`
	Auth     model.AuthState `json:"auth"`
	Redirect string          `json:"redirect"`
	Message  string          `json:"message,omitempty"`
}

// login checks the credentials, then signs the user in after the configured delay, keeping the
// session in its loading state meanwhile. The response waits for the sign-in.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromCtx(ctx).With(zap.String("handler", "login"))

	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}

	u, err := h.accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	s := h.signIn(r, st, u)
	if err := h.renewSession(w, r); err != nil {
		writeError(ctx, w, err)
		return
	}
	log.Info("user signed in", zap.String("user_id", u.ID))

	writeJSON(w, http.StatusOK, authResponse{
		User:     u,
		Auth:     s.Auth,
		Redirect: guard.LandingPath(u.Role),
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromCtx(ctx).With(zap.String("handler", "register"))

	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	var req user.RegisterInput
	if !decode(w, r, &req) {
		return
	}

	u, err := h.accounts.Register(ctx, req, h.now())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	s := h.signIn(r, st, u)
	if err := h.renewSession(w, r); err != nil {
		writeError(ctx, w, err)
		return
	}
	log.Info("user registered and signed in", zap.String("user_id", u.ID))

	resp := authResponse{User: u, Auth: s.Auth, Redirect: guard.LandingPath(u.Role)}
	if u.Role == model.RoleSeller {
		resp.Message = "Seller account created! Your account is pending approval from admin."
	}
	writeJSON(w, http.StatusCreated, resp)
}

// signIn runs the delayed LOGIN. A client that goes away does not abort it.
func (h *Handler) signIn(r *http.Request, st *store.Store, u model.User) store.State {
	ctx := r.Context()
	st.Dispatch(ctx, store.SetLoading{Loading: true})
	done := st.DispatchAfter(ctx, h.cfg.LoginDelay, store.Login{User: u}, store.SetLoading{Loading: false})
	return <-done
}

// renewSession moves the signed-in state under a fresh session id and token, so a token handed
// out before sign-in no longer reaches it.
func (h *Handler) renewSession(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	id, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		return errNoSession
	}
	newID, ok := h.sessions.Rotate(ctx, id)
	if !ok {
		return fmt.Errorf("session %s: %w", id, errNoSession)
	}
	return middleware.IssueSessionToken(w, newID, h.sessionCfg)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.Dispatch(r.Context(), store.Logout{})
	logger.FromCtx(r.Context()).Info("user signed out")
	writeJSON(w, http.StatusOK, map[string]any{"auth": s.Auth, "redirect": guard.LoginPath})
}

type sessionResponse struct {
	Auth                    model.AuthState  `json:"auth"`
	Counts                  dashboard.Counts `json:"counts"`
	SearchQuery             string           `json:"searchQuery"`
	SelectedGenre           string           `json:"selectedGenre"`
	SelectedDeliveryAddress *model.Address   `json:"selectedDeliveryAddress"`
	IsLoading               bool             `json:"isLoading"`
	Landing                 string           `json:"landing"`
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.State()

	landing := guard.LoginPath
	if u, ok := s.CurrentUser(); ok {
		landing = guard.LandingPath(u.Role)
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		Auth:                    s.Auth,
		Counts:                  dashboard.Header(s),
		SearchQuery:             s.SearchQuery,
		SelectedGenre:           s.SelectedGenre,
		SelectedDeliveryAddress: s.SelectedDeliveryAddress,
		IsLoading:               s.Auth.IsLoading,
		Landing:                 landing,
	})
}
