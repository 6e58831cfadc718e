package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"techmart/internal/auth"
	"techmart/internal/config"
	"techmart/internal/model"

	"github.com/rs/zerolog"
)

// authService implements AuthService against the single configured
// admin identity. There is no user store and no attempt tracking.
type authService struct {
	cfg    config.AuthConfig
	logger zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg config.AuthConfig, logger zerolog.Logger) AuthService {
	return &authService{
		cfg:    cfg,
		logger: logger.With().Str("service", "auth").Logger(),
	}
}

// Login verifies the submitted credentials and issues a bearer token.
// The username comparison is case-insensitive; the password must match
// the configured admin password or, when enabled, the legacy password.
func (s *authService) Login(_ context.Context, username, password string) (*model.LoginResponse, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if !strings.EqualFold(username, strings.TrimSpace(s.cfg.AdminUsername)) {
		s.logger.Warn().Str("username", username).Msg("login rejected: unknown username")
		return nil, model.ErrBadCredentials
	}

	switch {
	case password == s.cfg.AdminPassword:
	case s.cfg.LegacyPassword != "" && password == s.cfg.LegacyPassword:
		// Still accepted, but loudly: operators should rotate clients
		// to the configured password and disable this one.
		s.logger.Warn().Str("username", username).Msg("login used the legacy admin password")
	default:
		s.logger.Warn().Str("username", username).Msg("login rejected: wrong password")
		return nil, model.ErrBadCredentials
	}

	ttl := time.Duration(s.cfg.TokenTTL) * time.Second
	token, expiresAt, err := auth.IssueToken(username, s.cfg.JWTSecret, ttl)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to issue token")
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("username", username).Time("expires_at", expiresAt).Msg("admin logged in")

	return &model.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
