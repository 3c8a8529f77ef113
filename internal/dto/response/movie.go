package response

import (
	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ReleaseYear     int     `json:"releaseYear"`
	DurationHours   int     `json:"durationHours"`
	DurationMinutes int     `json:"durationMinutes"`
	PosterURL       *string `json:"posterUrl,omitempty"`
	TrailerURL      *string `json:"trailerUrl,omitempty"`
	ReviewCount     int64   `json:"reviewCount"`
}

type SearchMoviesResponse struct {
	Movies []MovieResponse `json:"movies"`
}

// MovieDetailResponse is the movie page: the movie, its popularity rank
// and its reviews newest first.
type MovieDetailResponse struct {
	Movie   MovieResponse         `json:"movie"`
	Rank    int64                 `json:"rank"`
	Reviews []MovieReviewResponse `json:"reviews"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:              movie.ID.String(),
		Title:           movie.Title,
		Description:     movie.Description,
		ReleaseYear:     movie.ReleaseYear,
		DurationHours:   movie.DurationHours,
		DurationMinutes: movie.DurationMinutes,
		PosterURL:       movie.PosterURL,
		TrailerURL:      movie.TrailerURL,
		ReviewCount:     movie.ReviewCount,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, MovieToResponse(m))
	}
	return out
}

func MovieToDetailResponse(movie *entity.Movie, rank int64, reviews []*entity.MovieReview) MovieDetailResponse {
	items := make([]MovieReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, MovieReviewToResponse(r))
	}
	return MovieDetailResponse{
		Movie:   MovieToResponse(movie),
		Rank:    rank,
		Reviews: items,
	}
}
