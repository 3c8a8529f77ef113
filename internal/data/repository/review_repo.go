package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewUserMovieConstraint is the unique index on reviews(user_id, movie_id).
const ReviewUserMovieConstraint = "reviews_user_movie_key"

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.MovieReview, error)

	// UpdateByUserAndMovie returns the stored row, or nil when the pair
	// has no review.
	UpdateByUserAndMovie(ctx context.Context, review *entity.Review) (*entity.Review, error)
	DeleteByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (int64, error)
}

type reviewRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewReviewRepository(db database.DBTX, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, movie_id, comment, rating, edited, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.MovieID,
		review.Comment,
		review.Rating,
		review.Edited,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		if !database.IsUniqueViolation(err, ReviewUserMovieConstraint) {
			r.log.Error("Failed to create review",
				zap.Error(err),
				zap.String("user_id", review.UserID.String()),
				zap.String("movie_id", review.MovieID.String()),
			)
		}
		return fmt.Errorf("create review for movie %s by user %s: %w",
			review.MovieID.String(), review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, user_id, movie_id, comment, rating, edited, created_at, updated_at
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Comment,
		&review.Rating,
		&review.Edited,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find review by user %s and movie %s: %w",
			userID.String(), movieID.String(), err)
	}

	return &review, nil
}

// FindByMovieID lists reviews newest first with their author.
func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.MovieReview, error) {
	query := `
		SELECT rv.id, rv.user_id, rv.movie_id, rv.comment, rv.rating, rv.edited,
		       rv.created_at, rv.updated_at, u.email, u.first_name, u.last_name
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.movie_id = $1
		ORDER BY rv.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, movieID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reviews by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	reviews := make([]*entity.MovieReview, 0)
	for rows.Next() {
		var review entity.MovieReview
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Comment,
			&review.Rating,
			&review.Edited,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.AuthorEmail,
			&review.AuthorFirstName,
			&review.AuthorLastName,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) UpdateByUserAndMovie(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	query := `
		UPDATE reviews
		SET comment = $3, rating = $4, edited = TRUE, updated_at = $5
		WHERE user_id = $1 AND movie_id = $2
		RETURNING id, user_id, movie_id, comment, rating, edited, created_at, updated_at
	`

	var updated entity.Review
	err := r.db.QueryRow(ctx, query,
		review.UserID,
		review.MovieID,
		review.Comment,
		review.Rating,
		review.UpdatedAt,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.MovieID,
		&updated.Comment,
		&updated.Rating,
		&updated.Edited,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("movie_id", review.MovieID.String()),
		)
		return nil, fmt.Errorf("update review for movie %s by user %s: %w",
			review.MovieID.String(), review.UserID.String(), err)
	}

	return &updated, nil
}

func (r *reviewRepository) DeleteByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (int64, error) {
	query := `DELETE FROM reviews WHERE user_id = $1 AND movie_id = $2`

	result, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return 0, fmt.Errorf("delete review for movie %s by user %s: %w",
			movieID.String(), userID.String(), err)
	}

	count := result.RowsAffected()
	if count > 0 {
		r.log.Info("Review deleted",
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()))
	}
	return count, nil
}
