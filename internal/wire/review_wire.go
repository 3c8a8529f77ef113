package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, auth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/api/review", reviewHandler.AddReview)
		r.Put("/api/review", reviewHandler.EditReview)
		r.Delete("/api/review/{movieId}", reviewHandler.DeleteReview)
	})
}
