// Package api serves the bookstore over HTTP. Every request runs against the caller's session
// store: handlers validate input, dispatch actions and answer with the resulting state slice.
package api

import (
	"bookstore/internal/config"
	"bookstore/internal/logger"
	"bookstore/internal/metrics"
	"bookstore/internal/middleware"
	"bookstore/internal/model"
	"bookstore/internal/seed"
	"bookstore/internal/user"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Accounts authenticates and registers users. *user.Directory implements it.
type Accounts interface {
	Authenticate(ctx context.Context, email, password string) (model.User, error)
	Register(ctx context.Context, in user.RegisterInput, now time.Time) (model.User, error)
}

type Deps struct {
	Config   *config.Config
	Seed     *seed.Data
	Accounts Accounts
	Sessions middleware.Sessions
	// Optional.
	Metrics *metrics.Metrics
	Limiter *middleware.RateLimiter
	Now     func() time.Time
}

type Handler struct {
	cfg        *config.Config
	seed       *seed.Data
	accounts   Accounts
	sessions   middleware.Sessions
	sessionCfg middleware.SessionConfig
	now        func() time.Time
}

func NewRouter(d Deps) http.Handler {
	limiter := d.Limiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(d.Config.RateLimitRPS, d.Config.RateLimitBurst)
	}
	h := &Handler{
		cfg:      d.Config,
		seed:     d.Seed,
		accounts: d.Accounts,
		sessions: d.Sessions,
		sessionCfg: middleware.SessionConfig{
			Secret:      d.Config.JWTSecret,
			TTL:         d.Config.SessionTTL,
			Secure:      d.Config.AppEnv == "production",
			AllowCreate: limiter.AllowNewSession,
		},
		now: d.Now,
	}
	if h.now == nil {
		h.now = time.Now
	}

	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.CORS(d.Config.CORSOrigin))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Get("/health", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.ByIP)
		r.Use(middleware.SessionMiddleware(d.Sessions, h.sessionCfg))
		r.Use(limiter.BySession)

		r.Get("/session", h.getSession)
		r.Route("/auth", h.authRoutes)

		r.Get("/genres", h.listGenres)
		r.Put("/filters", h.setFilters)
		r.Route("/books", h.bookRoutes)

		r.Route("/cart", h.cartRoutes)
		r.Post("/checkout", h.checkout)

		r.Get("/countries", h.listCountries)
		r.Get("/countries/{code}/states", h.listStates)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireLogin())
			r.Route("/wishlist", h.wishlistRoutes)
			r.Get("/orders", h.listOrders)
			r.Route("/addresses", h.addressRoutes)
			r.Put("/delivery-address", h.setDeliveryAddress)
		})

		r.Route("/seller", func(r chi.Router) {
			r.Use(middleware.RequireRole(model.RoleSeller))
			h.sellerRoutes(r)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(model.RoleAdmin))
			h.adminRoutes(r)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
