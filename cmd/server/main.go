package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookstore/internal/api"
	"bookstore/internal/config"
	"bookstore/internal/logger"
	"bookstore/internal/metrics"
	"bookstore/internal/middleware"
	"bookstore/internal/seed"
	"bookstore/internal/session"
	"bookstore/internal/user"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// startServerFunc blocks until ctx is cancelled, then drains in-flight requests.
var startServerFunc = func(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	data, err := seed.Load()
	if err != nil {
		return err
	}

	handler, limiter, err := newServer(cfg, data)
	if err != nil {
		return err
	}
	go limiter.Cleanup(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.L().Info("bookstore server listening",
		zap.String("addr", srv.Addr),
		zap.String("env", cfg.AppEnv),
	)
	return startServerFunc(ctx, srv)
}

// newServer wires the account directory, session cache and metrics into the router.
func newServer(cfg *config.Config, data *seed.Data) (http.Handler, *middleware.RateLimiter, error) {
	accounts, err := user.NewDirectory(data.Credentials())
	if err != nil {
		return nil, nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	sessions := session.NewManager(data, cfg.SessionCapacity, cfg.SessionTTL,
		session.WithListener(m.ObserveAction),
		session.WithGauge(m.Sessions),
	)
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	return api.NewRouter(api.Deps{
		Config:   cfg,
		Seed:     data,
		Accounts: accounts,
		Sessions: sessions,
		Metrics:  m,
		Limiter:  limiter,
	}), limiter, nil
}
