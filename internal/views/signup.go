package views

import (
	"context"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/client"

	"go.uber.org/zap"
)

type SignupAPI interface {
	Signup(ctx context.Context, req request.SignupRequest) (*client.Response[response.AuthResponse], error)
}

type Signup struct {
	api     SignupAPI
	auth    *AuthState
	toaster Toaster
	nav     Navigator
	log     *zap.Logger
}

func NewSignup(api SignupAPI, auth *AuthState, toaster Toaster, nav Navigator, log *zap.Logger) *Signup {
	return &Signup{
		api:     api,
		auth:    auth,
		toaster: toaster,
		nav:     nav,
		log:     log.With(zap.String("view", "signup")),
	}
}

// Submit creates the account, stores the session in the AuthState and
// goes home.
func (s *Signup) Submit(ctx context.Context, form request.SignupRequest) error {
	resp, err := s.api.Signup(ctx, form)
	if err != nil {
		s.log.Warn("signup failed", zap.Error(err))
		s.toaster.Toast(errorToast(client.MessageOr(err, MsgRequestFailed)))
		return err
	}

	s.auth.Save(resp.Data)
	s.toaster.Toast(successToast(resp.Message))
	s.nav.Navigate("/")
	return nil
}
