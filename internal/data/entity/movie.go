package entity

type Movie struct {
	Base
	Title           string  `db:"title"`
	Description     string  `db:"description"`
	ReleaseYear     int     `db:"release_year"`
	DurationHours   int     `db:"duration_hours"`
	DurationMinutes int     `db:"duration_minutes"`
	PosterURL       *string `db:"poster_url"`
	TrailerURL      *string `db:"trailer_url"`

	// computed from reviews, not stored
	ReviewCount int64 `db:"review_count"`
}
