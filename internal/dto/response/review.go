package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	MovieID   string    `json:"movieId"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	Edited    bool      `json:"edited"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewEnvelope is the data of add and edit responses.
type ReviewEnvelope struct {
	Review ReviewResponse `json:"review"`
}

type DeleteReviewResponse struct {
	Count int64 `json:"count"`
}

// ReviewUser is the public part of a reviewer, nested under "user".
type ReviewUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type MovieReviewResponse struct {
	ReviewResponse
	User ReviewUser `json:"user"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		UserID:    review.UserID.String(),
		MovieID:   review.MovieID.String(),
		Comment:   review.Comment,
		Rating:    review.Rating,
		Edited:    review.Edited,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func MovieReviewToResponse(review *entity.MovieReview) MovieReviewResponse {
	return MovieReviewResponse{
		ReviewResponse: ReviewToResponse(&review.Review),
		User: ReviewUser{
			ID:        review.UserID.String(),
			Email:     review.AuthorEmail,
			FirstName: review.AuthorFirstName,
			LastName:  review.AuthorLastName,
		},
	}
}
