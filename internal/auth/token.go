// Package auth moves session tokens between HTTP requests and responses.
package auth

import (
	"net/http"
	"strings"
	"time"
)

const (
	AccessTokenCookie = "access_token"
	// TokenHeader carries a freshly issued token for clients that do not keep cookies.
	TokenHeader = "X-Session-Token"
)

func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// SetAccessToken hands a new token to the client as a cookie and a response header.
func SetAccessToken(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(TokenHeader, token)
}
