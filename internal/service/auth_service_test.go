package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck-api/config"
	"github.com/quizdeck/quizdeck-api/internal/authn"
	"github.com/quizdeck/quizdeck-api/internal/dto"
)

type fakeProvider struct {
	signIn  func(ctx context.Context, email, password string) (*authn.Session, error)
	getUser func(ctx context.Context, token string) (*authn.User, error)
}

func (f *fakeProvider) SignInWithPassword(ctx context.Context, email, password string) (*authn.Session, error) {
	return f.signIn(ctx, email, password)
}

func (f *fakeProvider) GetUser(ctx context.Context, token string) (*authn.User, error) {
	return f.getUser(ctx, token)
}

func configuredAuth() *config.Config {
	return &config.Config{Auth: config.Auth{URL: "http://localhost:9999", AnonKey: "anon-key"}}
}

func TestLoginRequiresConfiguredProvider(t *testing.T) {
	svc := NewAuthService(&config.Config{}, &fakeProvider{})

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "t@school.example", Password: "pw"})
	assertAppErr(t, err, http.StatusServiceUnavailable, "Set SUPABASE_URL and SUPABASE_ANON_KEY in backend .env")
}

func TestLoginRequiresCredentials(t *testing.T) {
	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"missing email", dto.LoginRequest{Password: "pw"}},
		{"blank email", dto.LoginRequest{Email: "   ", Password: "pw"}},
		{"missing password", dto.LoginRequest{Email: "t@school.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(configuredAuth(), &fakeProvider{})
			_, err := svc.Login(context.Background(), tt.req)
			assertAppErr(t, err, http.StatusBadRequest, "Email and password are required")
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	provider := &fakeProvider{
		signIn: func(ctx context.Context, email, password string) (*authn.Session, error) {
			return nil, &authn.APIError{Status: 400, Message: "Invalid login credentials"}
		},
	}
	svc := NewAuthService(configuredAuth(), provider)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "t@school.example", Password: "wrong"})
	assertAppErr(t, err, http.StatusUnauthorized, "Invalid login credentials")
}

func TestLoginSuccess(t *testing.T) {
	userID := uuid.New()
	provider := &fakeProvider{
		signIn: func(ctx context.Context, email, password string) (*authn.Session, error) {
			if email != "t@school.example" {
				t.Errorf("provider called with email %q, want trimmed address", email)
			}
			return &authn.Session{
				AccessToken:  "access",
				RefreshToken: "refresh",
				ExpiresAt:    1756400000,
				User:         authn.User{ID: userID, Email: email},
			}, nil
		},
	}
	svc := NewAuthService(configuredAuth(), provider)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "  t@school.example ", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.AccessToken != "access" || resp.RefreshToken != "refresh" || resp.ExpiresAt != 1756400000 {
		t.Errorf("session not relayed: %+v", resp)
	}
	if resp.User.ID != userID.String() || resp.User.Role != "teacher" {
		t.Errorf("user = %+v, want provider id with role teacher", resp.User)
	}
}
