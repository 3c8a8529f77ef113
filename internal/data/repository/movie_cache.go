package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// MovieCacheEvicter is implemented by movie repositories that cache reads.
// Review writes call it because they change review counts and ranks.
type MovieCacheEvicter interface {
	Evict(ctx context.Context, movieID uuid.UUID)
}

// CachingMovieRepository decorates a MovieRepository with Redis caching of
// single-movie and list reads. Search and rank always hit the database.
type CachingMovieRepository struct {
	inner     MovieRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	log       *zap.Logger
}

// NewCachingMovieRepository defaults ttl to one minute and namespace to "movies".
func NewCachingMovieRepository(rdb *redis.Client, ttl time.Duration, inner MovieRepository, namespace string, log *zap.Logger) *CachingMovieRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "movies"
	}
	return &CachingMovieRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		log:       log.With(zap.String("repository", "movie_cache")),
	}
}

func (c *CachingMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.movieKey(id)

	var cached entity.Movie
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	movie, err := c.inner.FindByID(ctx, id)
	if err != nil || movie == nil {
		return movie, err
	}

	c.set(ctx, key, movie)
	return movie, nil
}

func (c *CachingMovieRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	if c.rdb == nil {
		return c.inner.FindAll(ctx, offset, limit)
	}

	key := fmt.Sprintf("%s:list:%d:%d", c.namespace, offset, limit)

	var cached []*entity.Movie
	if c.get(ctx, key, &cached) {
		return cached, nil
	}

	movies, err := c.inner.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, movies)
	return movies, nil
}

func (c *CachingMovieRepository) CountAll(ctx context.Context) (int64, error) {
	return c.inner.CountAll(ctx)
}

func (c *CachingMovieRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Movie, error) {
	return c.inner.Search(ctx, query, limit)
}

func (c *CachingMovieRepository) GetRank(ctx context.Context, id uuid.UUID) (int64, error) {
	return c.inner.GetRank(ctx, id)
}

// Evict drops the cached movie and every cached list page. Failures are
// logged only; entries expire on their own.
func (c *CachingMovieRepository) Evict(ctx context.Context, movieID uuid.UUID) {
	if c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, c.movieKey(movieID)).Err(); err != nil {
		c.log.Warn("Failed to evict movie", zap.Error(err), zap.String("movie_id", movieID.String()))
	}
	if err := c.deleteByPattern(ctx, c.namespace+":list:*"); err != nil {
		c.log.Warn("Failed to evict movie lists", zap.Error(err))
	}
}

func (c *CachingMovieRepository) movieKey(id uuid.UUID) string {
	return fmt.Sprintf("%s:id:%s", c.namespace, id.String())
}

func (c *CachingMovieRepository) get(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		// corrupted entry
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c *CachingMovieRepository) set(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.log.Warn("Failed to cache movie data", zap.Error(err), zap.String("key", key))
	}
}

func (c *CachingMovieRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
