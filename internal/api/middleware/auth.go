package middleware

import (
	"context"
	"net/http"

	"library-system/internal/models"
	"library-system/internal/services"
	"library-system/internal/utils"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

type contextKey string

const sessionContextKey contextKey = "session"

// SessionFromContext extracts the authenticated session placed by RequireSession.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*models.Session)
	return session, ok
}

// SessionToken reads the raw token from the request cookie, if any.
func SessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

type AuthMiddleware struct {
	authService services.AuthService
}

func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireSession rejects the request with 401 unless it carries a valid,
// unexpired session cookie. The session is stored in the request context.
func (m *AuthMiddleware) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := m.authService.Validate(r.Context(), SessionToken(r))
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin composes RequireSession with an admin role check. Requests
// without a session get 401, never 403, so the gate does not reveal whether
// an admin resource exists.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireSession(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok || session.Role != models.RoleAdmin {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden - Admin access required")
			return
		}

		next(w, r)
	})
}
