package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"sandevex-hiring-backend/internal/config"
	"sandevex-hiring-backend/internal/logger"
	"sandevex-hiring-backend/internal/security"
)

type authService struct {
	cfg    config.AdminConfig
	tokens security.TokenManager
}

func NewAuthService(cfg config.AdminConfig, tokens security.TokenManager) AuthService {
	return &authService{cfg: cfg, tokens: tokens}
}

// Login verifies the admin credential and issues a session token. The
// credential is a single configured admin account; the stored hash is
// bcrypt.
func (s *authService) Login(_ context.Context, email, password string) (string, error) {
	log := logger.WithService("auth")

	if email != s.cfg.Email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)); err != nil {
		log.Warn("admin login rejected", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAdminToken(email)
	if err != nil {
		return "", err
	}
	log.Info("admin login", "email", email)
	return token, nil
}
