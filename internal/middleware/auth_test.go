package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck-api/config"
	"github.com/quizdeck/quizdeck-api/internal/authn"
)

type fakeProvider struct {
	getUser func(ctx context.Context, token string) (*authn.User, error)
}

func (f *fakeProvider) SignInWithPassword(ctx context.Context, email, password string) (*authn.Session, error) {
	return nil, errors.New("not used")
}

func (f *fakeProvider) GetUser(ctx context.Context, token string) (*authn.User, error) {
	return f.getUser(ctx, token)
}

func authTestRouter(cfg *config.Config, provider authn.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorBoundary(false))
	router.Use(RequireTeacherAuth(cfg, provider, nil))
	router.GET("/protected", func(ctx *gin.Context) {
		if UserFrom(ctx) == nil || ScopeFrom(ctx) == nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "context not populated"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireTeacherAuth(t *testing.T) {
	teacherID := uuid.New()
	configured := &config.Config{Auth: config.Auth{URL: "http://localhost:9999", AnonKey: "anon"}}

	validProvider := &fakeProvider{
		getUser: func(ctx context.Context, token string) (*authn.User, error) {
			if token != "good-token" {
				return nil, &authn.APIError{Status: 401, Message: "invalid JWT"}
			}
			return &authn.User{ID: teacherID, Email: "t@school.example"}, nil
		},
	}

	tests := []struct {
		name        string
		cfg         *config.Config
		header      string
		wantCode    int
		wantMessage string
	}{
		{"provider not configured", &config.Config{}, "Bearer good-token", http.StatusServiceUnavailable,
			"Set SUPABASE_URL and SUPABASE_ANON_KEY in backend .env"},
		{"no header", configured, "", http.StatusUnauthorized,
			"Missing or invalid Authorization header"},
		{"wrong scheme", configured, "Basic dXNlcjpwdw==", http.StatusUnauthorized,
			"Missing or invalid Authorization header"},
		{"empty token", configured, "Bearer ", http.StatusUnauthorized,
			"Missing or invalid Authorization header"},
		{"rejected token", configured, "Bearer expired-token", http.StatusUnauthorized,
			"Your session has expired or is invalid. Please sign in again."},
		{"valid token", configured, "Bearer good-token", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := authTestRouter(tt.cfg, validProvider)

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.wantCode {
				t.Fatalf("got status %d, want %d (body %s)", rr.Code, tt.wantCode, rr.Body.String())
			}
			if tt.wantMessage == "" {
				return
			}

			var body struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body.Message != tt.wantMessage {
				t.Errorf("got message %q, want %q", body.Message, tt.wantMessage)
			}
		})
	}
}
