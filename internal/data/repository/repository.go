package repository

import (
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User   UserRepository
	Movie  MovieRepository
	Review ReviewRepository
}

func NewRepository(db database.DBTX, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Movie:  NewMovieRepository(db, log),
		Review: NewReviewRepository(db, log),
	}
}

// WithMovieCache wraps the movie repository in a Redis cache.
func (r *Repository) WithMovieCache(cache *CachingMovieRepository) *Repository {
	r.Movie = cache
	return r
}
