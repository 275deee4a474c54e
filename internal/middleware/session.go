package middleware

import (
	"bookstore/internal/auth"
	"bookstore/internal/logger"
	"bookstore/internal/store"
	"bookstore/internal/user"
	"bookstore/internal/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Sessions interface {
	Create(ctx context.Context) (string, *store.Store)
	Get(id string) (*store.Store, bool)
	// Rotate moves a session's store to a fresh id; the old id stops resolving.
	Rotate(ctx context.Context, id string) (string, bool)
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
	Secure bool
	// AllowCreate gates starting a new session; nil allows every request.
	AllowCreate func(*http.Request) bool
}

// SessionMiddleware resolves the caller's session from its token, starting a new one (and
// issuing a token for it) when the token is missing, invalid or its session is gone.
func SessionMiddleware(sessions Sessions, cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromCtx(ctx)

			id, st, ok := resume(sessions, auth.ExtractAccessToken(r), cfg.Secret)
			if !ok {
				if cfg.AllowCreate != nil && !cfg.AllowCreate(r) {
					log.Warn("session quota exhausted", zap.String("remote_addr", r.RemoteAddr))
					tooManyRequests(w)
					return
				}
				id, st = sessions.Create(ctx)
				if err := IssueSessionToken(w, id, cfg); err != nil {
					log.Error("failed to issue session token", zap.Error(err))
					utils.WriteJSONError(w, http.StatusInternalServerError, "internal", "could not start a session")
					return
				}
			}

			ctx = utils.SetSessionContext(ctx, id, st)
			ctx = logger.WithSessionID(ctx, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IssueSessionToken signs a token for session id and hands it to the client.
func IssueSessionToken(w http.ResponseWriter, id string, cfg SessionConfig) error {
	token, err := user.GenerateToken(id, cfg.Secret, cfg.TTL)
	if err != nil {
		return err
	}
	auth.SetAccessToken(w, token, cfg.TTL, cfg.Secure)
	return nil
}

func resume(sessions Sessions, token, secret string) (string, *store.Store, bool) {
	if token == "" {
		return "", nil, false
	}
	claims, err := user.ParseToken(token, secret)
	if err != nil {
		return "", nil, false
	}
	st, ok := sessions.Get(claims.SessionID)
	if !ok {
		return "", nil, false
	}
	return claims.SessionID, st, true
}
