package auth

import (
	"log/slog"

	"github.com/ems-project/ems-backend/internal/user"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of user storage the auth service needs.
type UserStore interface {
	UserByEmail(email string) (*user.User, error)
}

type Service struct {
	users          UserStore
	tokenGenerator TokenGenerator
	logger         *slog.Logger
}

func NewService(users UserStore, tokenGen TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		users:          users,
		tokenGenerator: tokenGen,
		logger:         logger,
	}
}

// Authenticate verifies credentials and issues an access token. Lookup and
// hash failures both surface as ErrInvalidCredentials so the response does
// not reveal which accounts exist.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.UserByEmail(dto.Email)
	if err != nil {
		s.logger.Warn("login failed: user lookup", "email", dto.Email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login failed: password mismatch", "eid", u.Eid)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.GenerateAccessToken(u.Eid, u.Urid)
	if err != nil {
		s.logger.Error("failed to sign access token", "error", err, "eid", u.Eid)
		return nil, err
	}

	s.logger.Info("user authenticated", "eid", u.Eid, "urid", u.Urid)
	return &LoginResponse{
		AccessToken: token,
		User: LoginUser{
			Eid:   u.Eid,
			Email: u.Email,
			Urid:  u.Urid,
		},
	}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}
