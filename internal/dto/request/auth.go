package request

type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GetUserRequest looks up ID, or the caller when ID is empty.
type GetUserRequest struct {
	ID string `json:"id,omitempty" validate:"omitempty,uuid"`
}
