package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// AddReview handles POST /api/review (protected)
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.ReviewRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	review, err := h.service.AddReview(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "add review")
		return
	}

	utils.ResponseCreated(w, "Review successfully added", review)
}

// EditReview handles PUT /api/review (protected)
func (h *ReviewHandler) EditReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.ReviewRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	review, err := h.service.EditReview(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "edit review")
		return
	}

	utils.ResponseSuccess(w, "Review successfully updated", review)
}

// DeleteReview handles DELETE /api/review/{movieId} (protected)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	result, err := h.service.DeleteReview(r.Context(), userID, chi.URLParam(r, "movieId"))
	if err != nil {
		writeServiceError(w, h.log, err, "delete review")
		return
	}

	msg := "Review successfully deleted"
	if result.Count == 0 {
		msg = "No review to delete"
	}
	utils.ResponseSuccess(w, msg, result)
}
