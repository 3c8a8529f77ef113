package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of the repositories.
func Wiring(repo *repository.Repository, config *utils.Config, tokens token.Manager, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, config, tokens, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	tokens token.Manager,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	auth := middleware.AuthJWT(tokens, logger)

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, auth)
	wireMovie(r, handler.Movie)
	wireReview(r, handler.Review, auth)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, true, "Method not allowed", nil)
	})

	return r
}
