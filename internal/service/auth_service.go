package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/quizdeck/quizdeck-api/config"
	"github.com/quizdeck/quizdeck-api/internal/apperr"
	"github.com/quizdeck/quizdeck-api/internal/authn"
	"github.com/quizdeck/quizdeck-api/internal/dto"
	"github.com/rs/zerolog/log"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	cfg      *config.Config
	provider authn.Provider
}

func NewAuthService(cfg *config.Config, provider authn.Provider) AuthService {
	return &authService{cfg: cfg, provider: provider}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if !s.cfg.Auth.Configured() {
		return nil, apperr.ServiceUnavailable("Auth not configured",
			"Set SUPABASE_URL and SUPABASE_ANON_KEY in backend .env")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperr.BadRequest("Email and password are required")
	}

	session, err := s.provider.SignInWithPassword(ctx, email, req.Password)
	if err != nil {
		var apiErr *authn.APIError
		if errors.As(err, &apiErr) {
			log.Debug().Int("status", apiErr.Status).Str("email", email).Msg("Sign-in rejected by identity provider")
			return nil, apperr.New(http.StatusUnauthorized, "Invalid credentials", apiErr.Message)
		}
		log.Error().Err(err).Msg("Sign-in call to identity provider failed")
		return nil, apperr.Internal("Failed to sign in", err)
	}

	return &dto.LoginResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    session.ExpiresAt,
		User: dto.LoginUser{
			ID:    session.User.ID.String(),
			Email: session.User.Email,
			Role:  "teacher",
		},
	}, nil
}
