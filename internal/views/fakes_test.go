package views

import (
	"context"
	"sync"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/client"
)

type toastRecorder struct {
	mu     sync.Mutex
	toasts []Toast
}

func (r *toastRecorder) Toast(t Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, t)
}

func (r *toastRecorder) all() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Toast(nil), r.toasts...)
}

type navRecorder struct {
	paths []string
}

func (n *navRecorder) Navigate(path string) { n.paths = append(n.paths, path) }

type fakeSearchAPI struct {
	search func(ctx context.Context, query string) (*client.Response[response.SearchMoviesResponse], error)
}

func (f *fakeSearchAPI) SearchMovies(ctx context.Context, query string) (*client.Response[response.SearchMoviesResponse], error) {
	return f.search(ctx, query)
}

type fakeSignupAPI struct {
	signup func(ctx context.Context, req request.SignupRequest) (*client.Response[response.AuthResponse], error)
}

func (f *fakeSignupAPI) Signup(ctx context.Context, req request.SignupRequest) (*client.Response[response.AuthResponse], error) {
	return f.signup(ctx, req)
}

type fakeMovieAPI struct {
	getMovie     func(ctx context.Context, movieID string) (*client.Response[response.MovieDetailResponse], error)
	addReview    func(ctx context.Context, req request.ReviewRequest) (*client.Response[response.ReviewEnvelope], error)
	editReview   func(ctx context.Context, req request.ReviewRequest) (*client.Response[response.ReviewEnvelope], error)
	deleteReview func(ctx context.Context, movieID string) (*client.Response[response.DeleteReviewResponse], error)
}

func (f *fakeMovieAPI) GetMovie(ctx context.Context, movieID string) (*client.Response[response.MovieDetailResponse], error) {
	return f.getMovie(ctx, movieID)
}

func (f *fakeMovieAPI) AddReview(ctx context.Context, req request.ReviewRequest) (*client.Response[response.ReviewEnvelope], error) {
	return f.addReview(ctx, req)
}

func (f *fakeMovieAPI) EditReview(ctx context.Context, req request.ReviewRequest) (*client.Response[response.ReviewEnvelope], error) {
	return f.editReview(ctx, req)
}

func (f *fakeMovieAPI) DeleteReview(ctx context.Context, movieID string) (*client.Response[response.DeleteReviewResponse], error) {
	return f.deleteReview(ctx, movieID)
}

func businessError(message string) error {
	return &client.Error{Kind: client.KindBusiness, Message: message, StatusCode: 400}
}
