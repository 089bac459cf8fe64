package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"gitea.jw6.us/james/caltable/internal/config"
)

func newService(t *testing.T, user, password string) *Service {
	t.Helper()
	cfg := &config.Config{}
	cfg.BasicAuth.User = user
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("bcrypt: %v", err)
		}
		cfg.BasicAuth.PasswordHash = string(hash)
	}
	return NewService(cfg)
}

func doRequest(svc *Service, user, pass string, withCreds bool) *httptest.ResponseRecorder {
	handler := svc.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/calendars", nil)
	if withCreds {
		req.SetBasicAuth(user, pass)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	svc := newService(t, "admin", "hunter2")

	tests := []struct {
		name       string
		user, pass string
		withCreds  bool
		wantStatus int
	}{
		{"valid credentials", "admin", "hunter2", true, http.StatusNoContent},
		{"wrong password", "admin", "swordfish", true, http.StatusUnauthorized},
		{"wrong user", "root", "hunter2", true, http.StatusUnauthorized},
		{"missing credentials", "", "", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(svc, tt.user, tt.pass, tt.withCreds)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Code == http.StatusUnauthorized && rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("401 response missing WWW-Authenticate header")
			}
		})
	}
}

func TestRequireAuthDisabled(t *testing.T) {
	svc := newService(t, "", "")

	if rec := doRequest(svc, "", "", false); rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want pass-through when auth is not configured", rec.Code)
	}
}
