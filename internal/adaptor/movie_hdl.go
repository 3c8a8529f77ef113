package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// ListMovies handles GET /api/movies?page=&per_page=
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), request.DefaultPerPage),
	}

	movies, err := h.service.ListMovies(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// SearchMovies handles GET /api/movies/search?query=
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	req := &request.SearchMoviesRequest{Query: r.URL.Query().Get("query")}

	result, err := h.service.SearchMovies(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetMovie handles GET /api/movies/{id}
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.GetMovieDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", details)
}
