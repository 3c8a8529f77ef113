package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAuthService struct {
	signupFn func(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	loginFn  func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

type mockUserService struct {
	getUserFn func(ctx context.Context, callerID uuid.UUID, req *request.GetUserRequest) (*response.UserResponse, error)
}

func (m *mockUserService) GetUser(ctx context.Context, callerID uuid.UUID, req *request.GetUserRequest) (*response.UserResponse, error) {
	return m.getUserFn(ctx, callerID, req)
}

type mockReviewService struct {
	addFn    func(ctx context.Context, callerID uuid.UUID, req *request.ReviewRequest) (*response.ReviewEnvelope, error)
	editFn   func(ctx context.Context, callerID uuid.UUID, req *request.ReviewRequest) (*response.ReviewEnvelope, error)
	deleteFn func(ctx context.Context, callerID uuid.UUID, movieID string) (*response.DeleteReviewResponse, error)
}

func (m *mockReviewService) AddReview(ctx context.Context, callerID uuid.UUID, req *request.ReviewRequest) (*response.ReviewEnvelope, error) {
	return m.addFn(ctx, callerID, req)
}

func (m *mockReviewService) EditReview(ctx context.Context, callerID uuid.UUID, req *request.ReviewRequest) (*response.ReviewEnvelope, error) {
	return m.editFn(ctx, callerID, req)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, callerID uuid.UUID, movieID string) (*response.DeleteReviewResponse, error) {
	return m.deleteFn(ctx, callerID, movieID)
}

type mockMovieService struct {
	listFn    func(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	searchFn  func(ctx context.Context, req *request.SearchMoviesRequest) (*response.SearchMoviesResponse, error)
	detailsFn func(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)
}

func (m *mockMovieService) ListMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	return m.listFn(ctx, req)
}

func (m *mockMovieService) SearchMovies(ctx context.Context, req *request.SearchMoviesRequest) (*response.SearchMoviesResponse, error) {
	return m.searchFn(ctx, req)
}

func (m *mockMovieService) GetMovieDetails(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	return m.detailsFn(ctx, movieID)
}

type envelope struct {
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func authed(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(utils.SetUserContext(req.Context(), userID))
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Parallel()

	svc := &mockAuthService{
		signupFn: func(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
			if req.Email == "taken@example.com" {
				return nil, utils.NewBusinessError("An account is already registered with this email")
			}
			if req.Password == "" {
				return nil, utils.NewValidationError(map[string]string{"password": "This field is required"})
			}
			return &response.AuthResponse{
				User:  response.UserResponse{ID: uuid.NewString(), Email: req.Email},
				Token: "signed",
			}, nil
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{name: "created", body: `{"firstName":"Ada","lastName":"L","email":"ada@example.com","password":"password1"}`, wantStatus: http.StatusCreated, wantMsg: "Signup successful"},
		{name: "duplicate", body: `{"email":"taken@example.com","password":"x"}`, wantStatus: http.StatusBadRequest, wantMsg: "An account is already registered with this email"},
		{name: "validation", body: `{"email":"ada@example.com"}`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid input"},
		{name: "malformed json", body: `{"email":`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			h.Signup(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tt.wantMsg, env.Message)
			assert.Equal(t, tt.wantStatus >= 400, env.Error)
		})
	}
}

func TestAuthHandler_Signup_ValidationFieldsInData(t *testing.T) {
	t.Parallel()

	svc := &mockAuthService{
		signupFn: func(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
			return nil, utils.NewValidationError(map[string]string{"email": "Invalid email format"})
		},
	}

	rec := httptest.NewRecorder()
	NewAuthHandler(svc, zap.NewNop()).Signup(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))

	env := decode(t, rec)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Equal(t, "Invalid email format", fields["email"])
}

func TestAuthHandler_Login_HidesInternalErrors(t *testing.T) {
	t.Parallel()

	svc := &mockAuthService{
		loginFn: func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
			return nil, errors.New("pq: password authentication failed for user postgres")
		},
	}

	rec := httptest.NewRecorder()
	NewAuthHandler(svc, zap.NewNop()).Login(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","password":"x"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "Internal server error", env.Message)
	assert.NotContains(t, rec.Body.String(), "postgres")
}

func TestAuthHandler_Login_NeverReturnsHash(t *testing.T) {
	t.Parallel()

	svc := &mockAuthService{
		loginFn: func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
			return &response.AuthResponse{User: response.UserResponse{ID: "1", Email: req.Email}, Token: "t"}, nil
		},
	}

	rec := httptest.NewRecorder()
	NewAuthHandler(svc, zap.NewNop()).Login(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","password":"x"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login successful", decode(t, rec).Message)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Parallel()

	caller := uuid.New()
	svc := &mockUserService{
		getUserFn: func(ctx context.Context, callerID uuid.UUID, req *request.GetUserRequest) (*response.UserResponse, error) {
			assert.Equal(t, caller, callerID)
			if req.ID == "" {
				return &response.UserResponse{ID: callerID.String()}, nil
			}
			return nil, utils.NewBusinessError("No user found")
		},
	}
	h := NewUserHandler(svc, zap.NewNop())

	t.Run("empty body uses caller", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetUser(rec, authed(httptest.NewRequest(http.MethodPost, "/api/auth/user", http.NoBody), caller))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User found successfully", decode(t, rec).Message)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"id":"` + uuid.NewString() + `"}`)
		h.GetUser(rec, authed(httptest.NewRequest(http.MethodPost, "/api/auth/user", body), caller))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No user found", decode(t, rec).Message)
	})

	t.Run("no identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetUser(rec, httptest.NewRequest(http.MethodPost, "/api/auth/user", http.NoBody))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestReviewHandler_AddAndEdit(t *testing.T) {
	t.Parallel()

	caller := uuid.New()
	svc := &mockReviewService{
		addFn: func(ctx context.Context, callerID uuid.UUID, req *request.ReviewRequest) (*response.ReviewEnvelope, error) {
			if req.UserID != "" && req.UserID != callerID.String() {
				return nil, utils.NewForbiddenError("You can only manage your own reviews")
			}
			return &response.ReviewEnvelope{Review: response.ReviewResponse{UserID: callerID.String(), MovieID: req.MovieID, Rating: req.Rating}}, nil
		},
		editFn: func(ctx context.Context, callerID uuid.UUID, req *request.ReviewRequest) (*response.ReviewEnvelope, error) {
			return nil, utils.NewBusinessError("No review found for this movie")
		},
	}
	h := NewReviewHandler(svc, zap.NewNop())
	movieID := uuid.NewString()

	t.Run("add", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"movieId":"` + movieID + `","comment":"good","rating":4}`)
		h.AddReview(rec, authed(httptest.NewRequest(http.MethodPost, "/api/review", body), caller))

		assert.Equal(t, http.StatusCreated, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "Review successfully added", env.Message)

		var data response.ReviewEnvelope
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, movieID, data.Review.MovieID)
		assert.Equal(t, 4, data.Review.Rating)
	})

	t.Run("add for someone else", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"userId":"` + uuid.NewString() + `","movieId":"` + movieID + `","comment":"x","rating":1}`)
		h.AddReview(rec, authed(httptest.NewRequest(http.MethodPost, "/api/review", body), caller))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.True(t, decode(t, rec).Error)
	})

	t.Run("edit missing review", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"movieId":"` + movieID + `","comment":"x","rating":1}`)
		h.EditReview(rec, authed(httptest.NewRequest(http.MethodPut, "/api/review", body), caller))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No review found for this movie", decode(t, rec).Message)
	})
}

func TestReviewHandler_DeleteReview(t *testing.T) {
	t.Parallel()

	caller := uuid.New()
	existing := uuid.NewString()
	svc := &mockReviewService{
		deleteFn: func(ctx context.Context, callerID uuid.UUID, movieID string) (*response.DeleteReviewResponse, error) {
			if movieID == existing {
				return &response.DeleteReviewResponse{Count: 1}, nil
			}
			return &response.DeleteReviewResponse{Count: 0}, nil
		},
	}

	r := chi.NewRouter()
	r.Delete("/api/review/{movieId}", NewReviewHandler(svc, zap.NewNop()).DeleteReview)

	tests := []struct {
		name      string
		movieID   string
		wantMsg   string
		wantCount int64
	}{
		{name: "deleted", movieID: existing, wantMsg: "Review successfully deleted", wantCount: 1},
		{name: "nothing", movieID: uuid.NewString(), wantMsg: "No review to delete", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodDelete, "/api/review/"+tt.movieID, nil), caller))

			assert.Equal(t, http.StatusOK, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tt.wantMsg, env.Message)

			var data response.DeleteReviewResponse
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, tt.wantCount, data.Count)
		})
	}
}

func TestMovieHandler(t *testing.T) {
	t.Parallel()

	movieID := uuid.NewString()
	svc := &mockMovieService{
		listFn: func(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
			assert.Equal(t, 3, req.Page)
			assert.Equal(t, 5, req.PerPage)
			return response.NewPaginatedResponse([]response.MovieResponse{{Title: "Inception"}}, req.Page, req.PerPage, 11), nil
		},
		searchFn: func(ctx context.Context, req *request.SearchMoviesRequest) (*response.SearchMoviesResponse, error) {
			assert.Equal(t, "dark knight", req.Query)
			return &response.SearchMoviesResponse{Movies: []response.MovieResponse{}}, nil
		},
		detailsFn: func(ctx context.Context, id string) (*response.MovieDetailResponse, error) {
			if id != movieID {
				return nil, utils.NewBusinessError("Movie does not exist")
			}
			return &response.MovieDetailResponse{Movie: response.MovieResponse{ID: id, Title: "Inception"}, Rank: 1}, nil
		},
	}
	h := NewMovieHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/movies", h.ListMovies)
	r.Get("/api/movies/search", h.SearchMovies)
	r.Get("/api/movies/{id}", h.GetMovie)

	t.Run("list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies?page=3&per_page=5", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var data response.PaginatedResponse[response.MovieResponse]
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
		assert.Equal(t, 3, data.Pagination.TotalPages)
	})

	t.Run("search", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/search?query=dark+knight", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"movies":[]}`, string(decode(t, rec).Data))
	})

	t.Run("details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/"+movieID, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var data response.MovieDetailResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
		assert.Equal(t, "Inception", data.Movie.Title)
		assert.Equal(t, int64(1), data.Rank)
	})

	t.Run("unknown movie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Movie does not exist", decode(t, rec).Message)
	})
}

func TestWriteServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantData   string
	}{
		{
			name:       "validation with fields",
			err:        utils.NewValidationError(map[string]string{"email": "Must be a valid email"}),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid input",
			wantData:   `{"email":"Must be a valid email"}`,
		},
		{
			name:       "business",
			err:        utils.NewBusinessError("Movie does not exist"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Movie does not exist",
		},
		{
			name:       "forbidden",
			err:        utils.NewForbiddenError("You can only manage your own reviews"),
			wantStatus: http.StatusForbidden,
			wantMsg:    "You can only manage your own reviews",
		},
		{
			name:       "internal keeps cause private",
			err:        utils.NewInternalError("insert review", errors.New("connection reset")),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			writeServiceError(rec, zap.NewNop(), tt.err, "test")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, utils.AsAppError(tt.err).StatusCode(), rec.Code)
			env := decode(t, rec)
			assert.True(t, env.Error)
			assert.Equal(t, tt.wantMsg, env.Message)
			if tt.wantData == "" {
				assert.Empty(t, env.Data)
				return
			}
			assert.JSONEq(t, tt.wantData, string(env.Data))
		})
	}
}
