package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, auth func(http.Handler) http.Handler) {
	r.With(auth).Post("/api/auth/user", userHandler.GetUser)
}
