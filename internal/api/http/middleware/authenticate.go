package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/astroline/astroline-server/internal/logger"
	"github.com/astroline/astroline-server/internal/model"
)

// SessionService resolves user ids from bearer tokens.
type SessionService interface {
	Authenticate(ctx context.Context, token string) (int64, error)
}

// Authenticate validates bearer tokens and injects the user id into
// the request context.
type Authenticate struct {
	sessionService SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessionService SessionService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessionService: sessionService, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid bearer token.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if tokenString == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		userID, err := m.sessionService.Authenticate(r.Context(), tokenString)
		if err != nil {
			m.logger.Debug("authentication failed", "error", err.Error())
			http.Error(w, "invalid or expired session", http.StatusUnauthorized)
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
