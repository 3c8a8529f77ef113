package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/api/auth/signup", authHandler.Signup)
	r.Post("/api/auth/login", authHandler.Login)
}
