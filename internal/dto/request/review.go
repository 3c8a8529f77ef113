package request

// ReviewRequest is shared by add and edit. UserID is optional and must match
// the authenticated user when sent.
type ReviewRequest struct {
	UserID  string `json:"userId,omitempty" validate:"omitempty,uuid"`
	MovieID string `json:"movieId" validate:"required,uuid"`
	Comment string `json:"comment" validate:"required,max=2000"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}
