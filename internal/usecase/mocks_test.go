package usecase

import (
	"context"
	"sync"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	createFn        func(ctx context.Context, user *entity.User) error
	findByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn   func(ctx context.Context, email string) (*entity.User, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)

	created []*entity.User
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	m.created = append(m.created, user)
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmailWithPassword(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

type mockMovieRepo struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	findAllFn  func(ctx context.Context, offset, limit int) ([]*entity.Movie, error)
	countAllFn func(ctx context.Context) (int64, error)
	searchFn   func(ctx context.Context, query string, limit int) ([]*entity.Movie, error)
	getRankFn  func(ctx context.Context, id uuid.UUID) (int64, error)

	mu      sync.Mutex
	evicted []uuid.UUID
}

func (m *mockMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockMovieRepo) FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, offset, limit)
	}
	return nil, nil
}

func (m *mockMovieRepo) CountAll(ctx context.Context) (int64, error) {
	if m.countAllFn != nil {
		return m.countAllFn(ctx)
	}
	return 0, nil
}

func (m *mockMovieRepo) Search(ctx context.Context, query string, limit int) ([]*entity.Movie, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockMovieRepo) GetRank(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.getRankFn != nil {
		return m.getRankFn(ctx, id)
	}
	return 0, nil
}

func (m *mockMovieRepo) Evict(ctx context.Context, movieID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evicted = append(m.evicted, movieID)
}

type mockReviewRepo struct {
	createFn   func(ctx context.Context, review *entity.Review) error
	findFn     func(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error)
	byMovieFn  func(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.MovieReview, error)
	updateFn   func(ctx context.Context, review *entity.Review) (*entity.Review, error)
	deleteFn   func(ctx context.Context, userID, movieID uuid.UUID) (int64, error)
	createCall int
}

func (m *mockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	m.createCall++
	if m.createFn != nil {
		return m.createFn(ctx, review)
	}
	return nil
}

func (m *mockReviewRepo) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error) {
	if m.findFn != nil {
		return m.findFn(ctx, userID, movieID)
	}
	return nil, nil
}

func (m *mockReviewRepo) FindByMovieID(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.MovieReview, error) {
	if m.byMovieFn != nil {
		return m.byMovieFn(ctx, movieID, limit, offset)
	}
	return nil, nil
}

func (m *mockReviewRepo) UpdateByUserAndMovie(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, review)
	}
	return nil, nil
}

func (m *mockReviewRepo) DeleteByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, movieID)
	}
	return 0, nil
}

func newTestRepository(users *mockUserRepo, movies *mockMovieRepo, reviews *mockReviewRepo) *repository.Repository {
	if users == nil {
		users = &mockUserRepo{}
	}
	if movies == nil {
		movies = &mockMovieRepo{}
	}
	if reviews == nil {
		reviews = &mockReviewRepo{}
	}
	return &repository.Repository{User: users, Movie: movies, Review: reviews}
}

func existingMovie(id uuid.UUID) func(ctx context.Context, got uuid.UUID) (*entity.Movie, error) {
	return func(ctx context.Context, got uuid.UUID) (*entity.Movie, error) {
		if got != id {
			return nil, nil
		}
		m := &entity.Movie{Title: "Inception", ReleaseYear: 2010}
		m.ID = id
		return m, nil
	}
}
