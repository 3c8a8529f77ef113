package usecase

import (
	"context"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MsgNoUser = "No user found"

type UserService interface {
	// GetUser returns req.ID, or the caller when req.ID is empty.
	GetUser(ctx context.Context, callerID uuid.UUID, req *request.GetUserRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetUser(ctx context.Context, callerID uuid.UUID, req *request.GetUserRequest) (*response.UserResponse, error) {
	if err := validationFailed(us.log, "GetUser", req); err != nil {
		return nil, err
	}

	id := callerID
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, utils.NewValidationError(map[string]string{"id": "Must be a valid UUID"})
		}
		id = parsed
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError(errInternal, err)
	}
	if user == nil {
		return nil, utils.NewBusinessError(MsgNoUser)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
