package auth

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/krooster/krooster-backend-go/internal/config"
	"github.com/krooster/krooster-backend-go/internal/pkg/jwt"
	"github.com/krooster/krooster-backend-go/internal/pkg/validator"
)

var ErrInvalidCredentials = errors.New("Invalid username or password")

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

type Service struct {
	admin config.AdminConfig
	jwt   jwt.Service
}

func NewService(admin config.AdminConfig, jwtService jwt.Service) *Service {
	return &Service{admin: admin, jwt: jwtService}
}

// Login checks the operator credential and issues an access token.
// ADMIN_PASSWORD holds a bcrypt hash, never the plaintext.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return LoginResponse{}, err
	}

	if req.Username != s.admin.Username {
		return LoginResponse{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.Password), []byte(req.Password)); err != nil {
		return LoginResponse{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(req.Username)
	if err != nil {
		return LoginResponse{}, err
	}

	slog.Info("operator logged in", "username", req.Username)

	return LoginResponse{AccessToken: token, ExpiresAt: expiresAt}, nil
}
