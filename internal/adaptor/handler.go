package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Movie  *MovieHandler
	Review *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		User:   NewUserHandler(service.User, log),
		Movie:  NewMovieHandler(service.Movie, log),
		Review: NewReviewHandler(service.Review, log),
	}
}

// decodeBody reads a JSON body into dst. An empty body is allowed when
// allowEmpty is set.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}

	utils.ResponseBadRequest(w, "Invalid input", nil)
	return false
}

// writeServiceError answers with the AppError's status and message.
// Internal errors are logged and their cause never leaves the server.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr := utils.AsAppError(err)
	message := appErr.Message

	var data any
	switch appErr.Kind {
	case utils.KindValidation:
		if len(appErr.Fields) > 0 {
			data = appErr.Fields
		}
	case utils.KindBusiness:
		log.Info(operation+" rejected", zap.String("reason", appErr.Message))
	case utils.KindForbidden:
		log.Warn(operation+" forbidden", zap.String("reason", appErr.Message))
	default:
		log.Error(operation+" failed", zap.Error(err))
		message = "Internal server error"
	}

	utils.ResponseJSON(w, appErr.StatusCode(), true, message, data)
}

func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
	}
	return id, ok
}
