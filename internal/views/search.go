package views

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/client"

	"go.uber.org/zap"
)

type SearchAPI interface {
	SearchMovies(ctx context.Context, query string) (*client.Response[response.SearchMoviesResponse], error)
}

type Search struct {
	api     SearchAPI
	toaster Toaster
	log     *zap.Logger

	mu          sync.Mutex
	gen         tracker
	query       string
	results     []response.MovieResponse
	description string
}

type SearchState struct {
	Query       string
	Results     []response.MovieResponse
	Description string
}

func NewSearch(api SearchAPI, toaster Toaster, log *zap.Logger) *Search {
	return &Search{
		api:     api,
		toaster: toaster,
		log:     log.With(zap.String("view", "search")),
	}
}

// SetQuery fetches results when the query changes. A blank query or the
// current one again does nothing.
func (s *Search) SetQuery(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	if query == "" || query == s.query {
		s.mu.Unlock()
		return nil
	}
	s.query = query
	gen := s.gen.next()
	s.mu.Unlock()

	resp, err := s.api.SearchMovies(ctx, query)

	s.mu.Lock()
	if !s.gen.current(gen) {
		s.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		s.mu.Unlock()
		s.log.Warn("search failed", zap.String("query", query), zap.Error(err))
		s.toaster.Toast(errorToast(MsgFetchFailed))
		return err
	}
	s.results = resp.Data.Movies
	s.description = describeResults(len(resp.Data.Movies))
	s.mu.Unlock()

	return nil
}

func (s *Search) State() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SearchState{
		Query:       s.query,
		Results:     append([]response.MovieResponse(nil), s.results...),
		Description: s.description,
	}
}

func (s *Search) Render(w io.Writer) error {
	return templates["search"].Execute(w, s.State())
}

func describeResults(n int) string {
	switch n {
	case 0:
		return "No results found"
	case 1:
		return "1 result found"
	default:
		return fmt.Sprintf("%d results found", n)
	}
}
