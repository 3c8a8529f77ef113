package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	resp, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "signup")
		return
	}

	utils.ResponseCreated(w, "Signup successful", resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}
