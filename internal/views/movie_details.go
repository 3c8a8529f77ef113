package views

import (
	"context"
	"io"
	"sync"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/client"

	"go.uber.org/zap"
)

type MovieAPI interface {
	GetMovie(ctx context.Context, movieID string) (*client.Response[response.MovieDetailResponse], error)
	AddReview(ctx context.Context, req request.ReviewRequest) (*client.Response[response.ReviewEnvelope], error)
	EditReview(ctx context.Context, req request.ReviewRequest) (*client.Response[response.ReviewEnvelope], error)
	DeleteReview(ctx context.Context, movieID string) (*client.Response[response.DeleteReviewResponse], error)
}

// MovieDetails is the page of one movie and the signed-in user's review of
// it. Loads and review writes are numbered separately; a result is dropped
// only when a newer one of the same kind has already been applied.
type MovieDetails struct {
	api     MovieAPI
	auth    *AuthState
	toaster Toaster
	log     *zap.Logger
	movieID string

	mu      sync.Mutex
	loads   tracker
	writes  tracker
	details *response.MovieDetailResponse
}

type MovieDetailsState struct {
	Details  *response.MovieDetailResponse
	MyReview *response.MovieReviewResponse
}

func NewMovieDetails(api MovieAPI, auth *AuthState, toaster Toaster, log *zap.Logger, movieID string) *MovieDetails {
	return &MovieDetails{
		api:     api,
		auth:    auth,
		toaster: toaster,
		log:     log.With(zap.String("view", "movie_details"), zap.String("movie_id", movieID)),
		movieID: movieID,
	}
}

func (m *MovieDetails) Load(ctx context.Context) error {
	gen := m.begin(&m.loads)

	resp, err := m.api.GetMovie(ctx, m.movieID)
	if err != nil {
		if !m.isCurrent(&m.loads, gen) {
			return ErrStale
		}
		m.log.Warn("load movie failed", zap.Error(err))
		m.toaster.Toast(errorToast(client.MessageOr(err, MsgFetchFailed)))
		return err
	}

	details := resp.Data
	return m.commit(&m.loads, gen, func() { m.details = &details })
}

func (m *MovieDetails) AddReview(ctx context.Context, comment string, rating int) error {
	gen := m.begin(&m.writes)

	resp, err := m.api.AddReview(ctx, request.ReviewRequest{MovieID: m.movieID, Comment: comment, Rating: rating})
	if err != nil {
		return m.fail("add review", err)
	}
	m.toaster.Toast(successToast(resp.Message))

	review := m.withUser(resp.Data.Review)
	return m.commit(&m.writes, gen, func() {
		if m.details == nil {
			return
		}
		m.details.Reviews = append([]response.MovieReviewResponse{review}, m.details.Reviews...)
		m.details.Movie.ReviewCount++
	})
}

func (m *MovieDetails) EditReview(ctx context.Context, comment string, rating int) error {
	gen := m.begin(&m.writes)

	resp, err := m.api.EditReview(ctx, request.ReviewRequest{MovieID: m.movieID, Comment: comment, Rating: rating})
	if err != nil {
		return m.fail("edit review", err)
	}
	m.toaster.Toast(successToast(resp.Message))

	review := m.withUser(resp.Data.Review)
	return m.commit(&m.writes, gen, func() {
		if m.details == nil {
			return
		}
		for i := range m.details.Reviews {
			if m.details.Reviews[i].UserID == review.UserID {
				m.details.Reviews[i] = review
			}
		}
	})
}

func (m *MovieDetails) DeleteReview(ctx context.Context) error {
	gen := m.begin(&m.writes)

	resp, err := m.api.DeleteReview(ctx, m.movieID)
	if err != nil {
		return m.fail("delete review", err)
	}
	m.toaster.Toast(successToast(resp.Message))

	user, ok := m.auth.User()
	if !ok || resp.Data.Count == 0 {
		return m.commit(&m.writes, gen, func() {})
	}
	return m.commit(&m.writes, gen, func() {
		if m.details == nil {
			return
		}
		kept := m.details.Reviews[:0]
		for _, r := range m.details.Reviews {
			if r.UserID != user.ID {
				kept = append(kept, r)
			}
		}
		m.details.Reviews = kept
		if m.details.Movie.ReviewCount > 0 {
			m.details.Movie.ReviewCount--
		}
	})
}

func (m *MovieDetails) State() MovieDetailsState {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.details == nil {
		return MovieDetailsState{}
	}

	details := *m.details
	details.Reviews = append([]response.MovieReviewResponse(nil), m.details.Reviews...)
	state := MovieDetailsState{Details: &details}

	if user, ok := m.auth.User(); ok {
		for i := range details.Reviews {
			if details.Reviews[i].UserID == user.ID {
				mine := details.Reviews[i]
				state.MyReview = &mine
				break
			}
		}
	}
	return state
}

func (m *MovieDetails) Render(w io.Writer) error {
	return templates["movie"].Execute(w, m.State())
}

func (m *MovieDetails) begin(t *tracker) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return t.next()
}

func (m *MovieDetails) isCurrent(t *tracker, gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return t.current(gen)
}

func (m *MovieDetails) commit(t *tracker, gen uint64, apply func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !t.apply(gen) {
		return ErrStale
	}
	apply()
	return nil
}

// fail reports a failed review write. The toast is shown even when a newer
// request is in flight since it describes what the server did.
func (m *MovieDetails) fail(op string, err error) error {
	m.log.Warn(op+" failed", zap.Error(err))
	m.toaster.Toast(errorToast(client.MessageOr(err, MsgRequestFailed)))
	return err
}

func (m *MovieDetails) withUser(review response.ReviewResponse) response.MovieReviewResponse {
	out := response.MovieReviewResponse{ReviewResponse: review}
	if user, ok := m.auth.User(); ok {
		out.User = response.ReviewUser{ID: user.ID, Email: user.Email, FirstName: user.FirstName, LastName: user.LastName}
	}
	return out
}
