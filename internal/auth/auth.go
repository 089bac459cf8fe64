// Package auth guards mutating routes with HTTP Basic credentials. The
// password is stored as a bcrypt hash in configuration; read-only grid
// routes stay open.
package auth

import (
	"crypto/subtle"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"gitea.jw6.us/james/caltable/internal/config"
)

// Service validates Basic credentials against configured values.
type Service struct {
	user string
	hash []byte
}

// NewService builds a Service from configuration. When no credentials
// are configured the middleware passes every request through.
func NewService(cfg *config.Config) *Service {
	if !cfg.AuthEnabled() {
		log.Println("WARNING: No basic auth credentials configured. Mutating routes are open.")
	}
	return &Service{
		user: cfg.BasicAuth.User,
		hash: []byte(cfg.BasicAuth.PasswordHash),
	}
}

// RequireAuth is chi middleware enforcing Basic auth when configured.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.user == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()
		if !ok || !s.valid(user, pass) {
			w.Header().Set("WWW-Authenticate", `Basic realm="caltable"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Service) valid(user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.user)) == 1
	passOK := bcrypt.CompareHashAndPassword(s.hash, []byte(pass)) == nil
	return userOK && passOK
}
