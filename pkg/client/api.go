package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
)

func (c *Client) Signup(ctx context.Context, req request.SignupRequest) (*Response[response.AuthResponse], error) {
	return call[response.AuthResponse](ctx, c, http.MethodPost, "/api/auth/signup", req)
}

func (c *Client) Login(ctx context.Context, req request.LoginRequest) (*Response[response.AuthResponse], error) {
	return call[response.AuthResponse](ctx, c, http.MethodPost, "/api/auth/login", req)
}

// GetUser fetches userID, or the token's owner when userID is empty.
func (c *Client) GetUser(ctx context.Context, userID string) (*Response[response.UserResponse], error) {
	return call[response.UserResponse](ctx, c, http.MethodPost, "/api/auth/user", request.GetUserRequest{ID: userID})
}

func (c *Client) ListMovies(ctx context.Context, page, perPage int) (*Response[response.PaginatedResponse[response.MovieResponse]], error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	path := "/api/movies"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return call[response.PaginatedResponse[response.MovieResponse]](ctx, c, http.MethodGet, path, nil)
}

func (c *Client) SearchMovies(ctx context.Context, query string) (*Response[response.SearchMoviesResponse], error) {
	q := url.Values{"query": {query}}
	return call[response.SearchMoviesResponse](ctx, c, http.MethodGet, "/api/movies/search?"+q.Encode(), nil)
}

func (c *Client) GetMovie(ctx context.Context, movieID string) (*Response[response.MovieDetailResponse], error) {
	return call[response.MovieDetailResponse](ctx, c, http.MethodGet, "/api/movies/"+url.PathEscape(movieID), nil)
}

func (c *Client) AddReview(ctx context.Context, req request.ReviewRequest) (*Response[response.ReviewEnvelope], error) {
	return call[response.ReviewEnvelope](ctx, c, http.MethodPost, "/api/review", req)
}

func (c *Client) EditReview(ctx context.Context, req request.ReviewRequest) (*Response[response.ReviewEnvelope], error) {
	return call[response.ReviewEnvelope](ctx, c, http.MethodPut, "/api/review", req)
}

// DeleteReview removes the caller's review of movieID; Data.Count is 0 when
// there was nothing to delete.
func (c *Client) DeleteReview(ctx context.Context, movieID string) (*Response[response.DeleteReviewResponse], error) {
	return call[response.DeleteReviewResponse](ctx, c, http.MethodDelete, "/api/review/"+url.PathEscape(movieID), nil)
}
