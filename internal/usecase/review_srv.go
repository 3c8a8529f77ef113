package usecase

import (
	"context"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MsgMovieNotFound   = "Movie does not exist"
	MsgAlreadyReviewed = "You have already reviewed this movie"
	MsgNoReview        = "No review found for this movie"
	MsgNotYourReview   = "You can only manage your own reviews"
)

type ReviewService interface {
	AddReview(ctx context.Context, callerID uuid.UUID, req *request.ReviewRequest) (*response.ReviewEnvelope, error)
	EditReview(ctx context.Context, callerID uuid.UUID, req *request.ReviewRequest) (*response.ReviewEnvelope, error)

	// DeleteReview reports how many reviews were removed, 0 or 1.
	DeleteReview(ctx context.Context, callerID uuid.UUID, movieID string) (*response.DeleteReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
		now:  time.Now,
	}
}

func (s *reviewService) AddReview(ctx context.Context, callerID uuid.UUID, req *request.ReviewRequest) (*response.ReviewEnvelope, error) {
	movieID, err := s.prepare(ctx, callerID, req, "AddReview")
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Review.FindByUserAndMovie(ctx, callerID, movieID)
	if err != nil {
		return nil, utils.NewInternalError(errInternal, err)
	}
	if existing != nil {
		return nil, utils.NewBusinessError(MsgAlreadyReviewed)
	}

	now := s.now()
	review := &entity.Review{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:  callerID,
		MovieID: movieID,
		Comment: req.Comment,
		Rating:  req.Rating,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if database.IsUniqueViolation(err, repository.ReviewUserMovieConstraint) {
			return nil, utils.NewBusinessError(MsgAlreadyReviewed)
		}
		return nil, utils.NewInternalError(errInternal, err)
	}

	s.evictMovie(ctx, movieID)

	s.log.Info("Review added",
		zap.String("user_id", callerID.String()),
		zap.String("movie_id", movieID.String()))

	return &response.ReviewEnvelope{Review: response.ReviewToResponse(review)}, nil
}

func (s *reviewService) EditReview(ctx context.Context, callerID uuid.UUID, req *request.ReviewRequest) (*response.ReviewEnvelope, error) {
	movieID, err := s.prepare(ctx, callerID, req, "EditReview")
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Review.UpdateByUserAndMovie(ctx, &entity.Review{
		BaseNoDelete: entity.BaseNoDelete{UpdatedAt: s.now()},
		UserID:       callerID,
		MovieID:      movieID,
		Comment:      req.Comment,
		Rating:       req.Rating,
	})
	if err != nil {
		return nil, utils.NewInternalError(errInternal, err)
	}
	if updated == nil {
		return nil, utils.NewBusinessError(MsgNoReview)
	}

	return &response.ReviewEnvelope{Review: response.ReviewToResponse(updated)}, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, callerID uuid.UUID, movieID string) (*response.DeleteReviewResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, utils.NewValidationError(map[string]string{"movieId": "Must be a valid UUID"})
	}

	count, err := s.repo.Review.DeleteByUserAndMovie(ctx, callerID, id)
	if err != nil {
		return nil, utils.NewInternalError(errInternal, err)
	}
	if count > 0 {
		s.evictMovie(ctx, id)
	}

	return &response.DeleteReviewResponse{Count: count}, nil
}

// prepare validates the body, checks the caller owns it and that the
// movie exists.
func (s *reviewService) prepare(ctx context.Context, callerID uuid.UUID, req *request.ReviewRequest, op string) (uuid.UUID, error) {
	req.Comment = strings.TrimSpace(req.Comment)
	req.UserID = strings.TrimSpace(req.UserID)

	if err := validationFailed(s.log, op, req); err != nil {
		return uuid.Nil, err
	}

	if req.UserID != "" {
		bodyUser, err := uuid.Parse(req.UserID)
		if err != nil || bodyUser != callerID {
			s.log.Warn("Review for another user rejected",
				zap.String("caller_id", callerID.String()),
				zap.String("body_user_id", req.UserID))
			return uuid.Nil, utils.NewForbiddenError(MsgNotYourReview)
		}
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return uuid.Nil, utils.NewValidationError(map[string]string{"movieId": "Must be a valid UUID"})
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return uuid.Nil, utils.NewInternalError(errInternal, err)
	}
	if movie == nil {
		return uuid.Nil, utils.NewBusinessError(MsgMovieNotFound)
	}

	return movieID, nil
}

func (s *reviewService) evictMovie(ctx context.Context, movieID uuid.UUID) {
	if evicter, ok := s.repo.Movie.(repository.MovieCacheEvicter); ok {
		evicter.Evict(ctx, movieID)
	}
}
