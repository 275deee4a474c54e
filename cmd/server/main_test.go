package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookstore/internal/config"
	"bookstore/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppPort:         "8080",
		AppEnv:          "test",
		CORSOrigin:      "http://localhost:3000",
		JWTSecret:       "test-secret",
		SessionCapacity: 8,
		SessionTTL:      time.Minute,
		RateLimitRPS:    100,
		RateLimitBurst:  100,
	}
}

func TestNewServer(t *testing.T) {
	handler, limiter, err := newServer(testConfig(), seed.MustLoad())
	require.NoError(t, err)
	require.NotNil(t, limiter)

	t.Run("Health Check", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Metrics", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/session", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.True(t, strings.Contains(body, "bookstore_sessions_active 1"), body)
		assert.Contains(t, body, "go_goroutines")
	})
}

func TestRun(t *testing.T) {
	orig := startServerFunc
	defer func() { startServerFunc = orig }()

	var addr string
	startServerFunc = func(ctx context.Context, srv *http.Server) error {
		addr = srv.Addr
		return nil
	}

	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "test")
	t.Setenv("JWT_SECRET", "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, run(ctx))
	assert.Equal(t, ":9090", addr)
}

func TestRun_ConfigError(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	assert.Error(t, run(context.Background()))
}
