package authn

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck-api/config"
)

func providerStub(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Auth: config.Auth{URL: server.URL, AnonKey: "anon-key"}}
	return NewClient(cfg), server
}

func TestSignInWithPassword(t *testing.T) {
	userID := uuid.New()

	client, _ := providerStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("got path %s, want /auth/v1/token", r.URL.Path)
		}
		if r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("got grant_type %q, want password", r.URL.Query().Get("grant_type"))
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("apikey header not forwarded")
		}

		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		if creds["email"] != "t@school.example" {
			t.Errorf("got email %q", creds["email"])
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access",
			"refresh_token": "refresh",
			"expires_at":    1756400000,
			"user":          map[string]string{"id": userID.String(), "email": "t@school.example"},
		})
	})

	session, err := client.SignInWithPassword(context.Background(), "t@school.example", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.AccessToken != "access" || session.ExpiresAt != 1756400000 {
		t.Errorf("session not decoded: %+v", session)
	}
	if session.User.ID != userID {
		t.Errorf("user id = %s, want %s", session.User.ID, userID)
	}
}

func TestSignInWithPasswordRejected(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"error_description shape", 400, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`,
			"Invalid login credentials"},
		{"msg shape", 400, `{"code":400,"msg":"Email not confirmed"}`, "Email not confirmed"},
		{"unparseable body", 502, `upstream exploded`, "identity provider request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := providerStub(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.SignInWithPassword(context.Background(), "t@school.example", "wrong")

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %v", err)
			}
			if apiErr.Status != tt.status || apiErr.Message != tt.wantMessage {
				t.Errorf("got %d %q, want %d %q", apiErr.Status, apiErr.Message, tt.status, tt.wantMessage)
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	userID := uuid.New()

	client, _ := providerStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("got path %s, want /auth/v1/user", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer the-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":401,"msg":"invalid JWT"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": userID.String(), "email": "t@school.example"})
	})

	user, err := client.GetUser(context.Background(), "the-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != userID || user.Email != "t@school.example" {
		t.Errorf("user not decoded: %+v", user)
	}

	if _, err := client.GetUser(context.Background(), "stale-token"); err == nil {
		t.Fatal("expected an error for a rejected token")
	}
}
