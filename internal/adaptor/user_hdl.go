package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUser handles POST /api/auth/user (protected). The body may name
// another user by id; without one the caller is returned.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.GetUserRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	user, err := h.service.GetUser(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User found successfully", user)
}
