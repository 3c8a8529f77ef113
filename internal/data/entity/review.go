package entity

import (
	"github.com/google/uuid"
)

// Review is unique per (UserID, MovieID).
type Review struct {
	BaseNoDelete
	UserID  uuid.UUID `db:"user_id"`
	MovieID uuid.UUID `db:"movie_id"`
	Comment string    `db:"comment"`
	Rating  int       `db:"rating"` // 1-5
	Edited  bool      `db:"edited"`
}

// MovieReview is a review joined with its author.
type MovieReview struct {
	Review
	AuthorEmail     string `db:"email"`
	AuthorFirstName string `db:"first_name"`
	AuthorLastName  string `db:"last_name"`
}
