package response

import (
	"movie-catalog/internal/data/entity"
)

// UserResponse is the public projection of a user; the password hash is
// never part of it.
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func AuthToResponse(user *entity.User, token string) AuthResponse {
	return AuthResponse{
		User:  UserToResponse(user),
		Token: token,
	}
}
