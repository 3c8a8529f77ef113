package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the browser client on the configured origins to call the API.
// An empty list allows any origin without credentials.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}
	if len(allowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	} else {
		opts.AllowCredentials = true
	}
	return cors.Handler(opts)
}
