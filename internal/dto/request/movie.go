package request

type SearchMoviesRequest struct {
	Query string `json:"query" validate:"required,max=100"`
}
