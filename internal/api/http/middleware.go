package http

import (
	"net/http"
	"strings"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/security"

	"github.com/gorilla/mux"
)

type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

const defaultLoginMessage = "You must be logged in to access this resource"

// Authenticate requires a valid access token and injects its claims into the
// request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.authenticate(w, r, defaultLoginMessage)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RequireRoles gates a route group behind a static role allow-list. The
// authentication and role checks run before any handler logic; their
// messages are route-group specific so callers see exactly why they were
// turned away.
func (m *AuthMiddleware) RequireRoles(loginMsg, roleMsg string, allowed ...domain.Role) mux.MiddlewareFunc {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := m.authenticate(w, r, loginMsg)
			if !ok {
				return
			}
			if _, ok := allowedSet[claims.Role]; !ok {
				logger.Warn("Role check refused request", "path", r.URL.Path, "user_id", claims.UserID, "role", claims.Role)
				Fail(w, http.StatusForbidden, roleMsg)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// authenticate validates the bearer token, writing the 401 envelope itself
// on failure.
func (m *AuthMiddleware) authenticate(w http.ResponseWriter, r *http.Request, loginMsg string) (*security.UserClaims, bool) {
	token := extractToken(r)
	if token == "" {
		Fail(w, http.StatusUnauthorized, loginMsg)
		return nil, false
	}

	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		Fail(w, http.StatusUnauthorized, loginMsg)
		return nil, false
	}
	if claims.Type != security.TokenTypeAccess {
		Fail(w, http.StatusUnauthorized, loginMsg)
		return nil, false
	}
	return claims, true
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	if len(authHeader) > 7 && strings.ToUpper(authHeader[0:7]) == "BEARER " {
		return authHeader[7:]
	}
	return authHeader
}

// Recover converts panics escaping a handler into the generic server-error
// envelope. The original panic value is logged, never exposed.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Handler panicked", "path", r.URL.Path, "panic", rec)
				Fail(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
