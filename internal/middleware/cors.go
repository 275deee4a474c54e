package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the single configured front-end origin, with credentials so the session cookie
// travels along.
func CORS(origin string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Session-Token", "X-Request-ID", "Location"},
		AllowCredentials: true,
	})
	return c.Handler
}
