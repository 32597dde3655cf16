// Package middleware provides HTTP middleware for the recipes service.
package middleware

import (
	"context"
	"net/http"

	"github.com/vietkitchen/recipes-api/internal/app/domain/client"
	"github.com/vietkitchen/recipes-api/internal/errors"
	"github.com/vietkitchen/recipes-api/internal/httputil"
	"github.com/vietkitchen/recipes-api/pkg/logger"
)

// Authenticator resolves an Authorization header value to a registered
// client.
type Authenticator interface {
	Authenticate(ctx context.Context, bearerHeader string) (client.Client, error)
}

// AuthMiddleware gates requests on a valid bearer token. On failure the
// wrapped handler is never invoked.
type AuthMiddleware struct {
	auth   Authenticator
	logger *logger.Logger
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(auth Authenticator, log *logger.Logger) *AuthMiddleware {
	if log == nil {
		log = logger.NewDefault("auth")
	}
	return &AuthMiddleware{auth: auth, logger: log}
}

// Handler returns the middleware handler.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := m.auth.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			m.logger.WithField("path", r.URL.Path).
				WithField("method", r.Method).
				Warn("authentication failed")
			httputil.WriteError(w, http.StatusUnauthorized, errors.Unauthorized("").Message)
			return
		}

		next.ServeHTTP(w, r)
	})
}
