package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Movie  MovieService
	Review ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, tokens token.Manager, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo.User, tokens, config.Security.BcryptCost, log),
		User:   NewUserService(repo.User, log),
		Movie:  NewMovieService(repo, log),
		Review: NewReviewService(repo, log),
	}
}

// errInternal is the only message clients see for unexpected failures.
const errInternal = "Internal server error"

func validationFailed(log *zap.Logger, op string, req any) error {
	errs := utils.ValidateStruct(req)
	if len(errs) == 0 {
		return nil
	}
	log.Warn(op+" validation failed", zap.String("errors", utils.FormatValidationErrors(errs)))
	return utils.NewValidationError(errs)
}
