package usecase

import (
	"context"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	searchLimit        = 50
	detailsReviewLimit = 100
)

type MovieService interface {
	ListMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	SearchMovies(ctx context.Context, req *request.SearchMoviesRequest) (*response.SearchMoviesResponse, error)
	GetMovieDetails(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	req.PerPage = req.Limit()

	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError(errInternal, err)
	}

	movies, err := s.repo.Movie.FindAll(ctx, req.Offset(), req.Limit())
	if err != nil {
		return nil, utils.NewInternalError(errInternal, err)
	}

	return response.NewPaginatedResponse(response.MoviesToResponse(movies), req.Page, req.PerPage, total), nil
}

func (s *movieService) SearchMovies(ctx context.Context, req *request.SearchMoviesRequest) (*response.SearchMoviesResponse, error) {
	req.Query = strings.TrimSpace(req.Query)

	if err := validationFailed(s.log, "SearchMovies", req); err != nil {
		return nil, err
	}

	movies, err := s.repo.Movie.Search(ctx, req.Query, searchLimit)
	if err != nil {
		return nil, utils.NewInternalError(errInternal, err)
	}

	return &response.SearchMoviesResponse{Movies: response.MoviesToResponse(movies)}, nil
}

// GetMovieDetails loads rank and reviews concurrently once the movie is
// known to exist.
func (s *movieService) GetMovieDetails(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, utils.NewValidationError(map[string]string{"id": "Must be a valid UUID"})
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError(errInternal, err)
	}
	if movie == nil {
		return nil, utils.NewBusinessError(MsgMovieNotFound)
	}

	var (
		rank    int64
		reviews []*entity.MovieReview
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rank, err = s.repo.Movie.GetRank(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = s.repo.Review.FindByMovieID(gctx, id, detailsReviewLimit, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, utils.NewInternalError(errInternal, err)
	}

	resp := response.MovieToDetailResponse(movie, rank, reviews)
	return &resp, nil
}
