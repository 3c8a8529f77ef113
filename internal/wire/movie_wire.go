package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// public read side
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.ListMovies)
		r.Get("/search", movieHandler.SearchMovies)
		r.Get("/{id}", movieHandler.GetMovie)
	})
}
