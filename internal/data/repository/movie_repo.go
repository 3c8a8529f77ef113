package repository

import (
	"context"
	"fmt"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error)
	CountAll(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.Movie, error)

	// GetRank returns the 1-based position of the movie ordered by review
	// count desc then title, or 0 when the movie does not exist.
	GetRank(ctx context.Context, id uuid.UUID) (int64, error)
}

type movieRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewMovieRepository(db database.DBTX, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `
	m.id, m.title, m.description, m.release_year, m.duration_hours, m.duration_minutes,
	m.poster_url, m.trailer_url, m.created_at, m.updated_at,
	(SELECT COUNT(*) FROM reviews r WHERE r.movie_id = m.id) AS review_count`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.ReleaseYear,
		&movie.DurationHours,
		&movie.DurationMinutes,
		&movie.PosterURL,
		&movie.TrailerURL,
		&movie.CreatedAt,
		&movie.UpdatedAt,
		&movie.ReviewCount,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies m
		WHERE m.id = $1 AND m.deleted_at IS NULL
	`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies m
		WHERE m.deleted_at IS NULL
		ORDER BY review_count DESC, m.title ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get all movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all movies limit %d offset %d: %w", limit, offset, err)
	}

	return r.collect(rows)
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM movies WHERE deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Database error counting movies", zap.Error(err))
		return 0, fmt.Errorf("count all movies: %w", err)
	}

	return count, nil
}

// Search matches titles case-insensitively; the input is treated literally.
func (r *movieRepository) Search(ctx context.Context, q string, limit int) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies m
		WHERE m.deleted_at IS NULL AND m.title ILIKE $1 ESCAPE '\'
		ORDER BY review_count DESC, m.title ASC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, "%"+escapeLike(q)+"%", limit)
	if err != nil {
		r.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("query", q),
		)
		return nil, fmt.Errorf("search movies %q: %w", q, err)
	}

	return r.collect(rows)
}

func (r *movieRepository) GetRank(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `
		SELECT ranked.position FROM (
			SELECT m.id,
			       ROW_NUMBER() OVER (ORDER BY COUNT(rv.id) DESC, m.title ASC) AS position
			FROM movies m
			LEFT JOIN reviews rv ON rv.movie_id = m.id
			WHERE m.deleted_at IS NULL
			GROUP BY m.id, m.title
		) ranked
		WHERE ranked.id = $1
	`

	var rank int64
	err := r.db.QueryRow(ctx, query, id).Scan(&rank)
	if database.IsNoRows(err) {
		return 0, nil
	}
	if err != nil {
		r.log.Error("Failed to get movie rank",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return 0, fmt.Errorf("get rank for movie %s: %w", id.String(), err)
	}

	return rank, nil
}

func (r *movieRepository) collect(rows pgx.Rows) ([]*entity.Movie, error) {
	defer rows.Close()

	movies := make([]*entity.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
