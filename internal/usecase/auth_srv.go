package usecase

import (
	"context"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MsgEmailTaken        = "An account is already registered with this email"
	MsgIncorrectEmail    = "Incorrect email"
	MsgIncorrectPassword = "Incorrect password"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	tokens     token.Manager
	bcryptCost int
	log        *zap.Logger
	now        func() time.Time
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens token.Manager,
	bcryptCost int,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		log:        log.With(zap.String("service", "auth")),
		now:        time.Now,
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = normalizeEmail(req.Email)

	// 1. Validate input
	if err := validationFailed(s.log, "Signup", req); err != nil {
		return nil, err
	}

	// 2. Reject registered emails before hashing
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.NewInternalError(errInternal, err)
	}
	if exists {
		return nil, utils.NewBusinessError(MsgEmailTaken)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, utils.NewInternalError(errInternal, err)
	}

	// 4. Save user
	now := s.now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent signup for the same email
		if database.IsUniqueViolation(err, repository.UserEmailConstraint) {
			return nil, utils.NewBusinessError(MsgEmailTaken)
		}
		return nil, utils.NewInternalError(errInternal, err)
	}

	// 5. Issue token
	signed, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, utils.NewInternalError(errInternal, err)
	}

	s.log.Info("User signed up", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, signed)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	if err := validationFailed(s.log, "Login", req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmailWithPassword(ctx, req.Email)
	if err != nil {
		return nil, utils.NewInternalError(errInternal, err)
	}
	if user == nil {
		return nil, utils.NewBusinessError(MsgIncorrectEmail)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login with wrong password", zap.String("user_id", user.ID.String()))
		return nil, utils.NewBusinessError(MsgIncorrectPassword)
	}

	signed, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, utils.NewInternalError(errInternal, err)
	}

	resp := response.AuthToResponse(user, signed)
	return &resp, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
