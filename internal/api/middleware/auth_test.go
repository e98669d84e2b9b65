package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"library-system/internal/models"
	"library-system/internal/services"
)

// stubAuthService returns a fixed session for one known token.
type stubAuthService struct {
	token   string
	session *models.Session
}

func (s *stubAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	return nil, services.ErrInvalidCredentials
}

func (s *stubAuthService) Validate(ctx context.Context, token string) (*models.Session, error) {
	if token != "" && token == s.token {
		return s.session, nil
	}
	return nil, services.ErrSessionNotFound
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return nil
}

func gateRequest(t *testing.T, gate func(http.HandlerFunc) http.HandlerFunc, token string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	gate(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})(w, req)
	return w.Code
}

func TestRequireSession(t *testing.T) {
	mw := NewAuthMiddleware(&stubAuthService{
		token:   "good",
		session: &models.Session{UserID: 1, Username: "2023001", Role: models.RoleStudent},
	})

	if code := gateRequest(t, mw.RequireSession, ""); code != http.StatusUnauthorized {
		t.Fatalf("want 401 without cookie, got %d", code)
	}
	if code := gateRequest(t, mw.RequireSession, "bad"); code != http.StatusUnauthorized {
		t.Fatalf("want 401 for unknown token, got %d", code)
	}
	if code := gateRequest(t, mw.RequireSession, "good"); code != http.StatusOK {
		t.Fatalf("want 200 for valid token, got %d", code)
	}
}

func TestRequireAdminOrdering(t *testing.T) {
	studentMW := NewAuthMiddleware(&stubAuthService{
		token:   "student",
		session: &models.Session{UserID: 1, Username: "2023001", Role: models.RoleStudent},
	})
	adminMW := NewAuthMiddleware(&stubAuthService{
		token:   "admin",
		session: &models.Session{UserID: 2, Username: "admin", Role: models.RoleAdmin},
	})

	// Missing session must read as unauthenticated, never forbidden.
	if code := gateRequest(t, studentMW.RequireAdmin, ""); code != http.StatusUnauthorized {
		t.Fatalf("want 401 without session, got %d", code)
	}
	if code := gateRequest(t, studentMW.RequireAdmin, "student"); code != http.StatusForbidden {
		t.Fatalf("want 403 for student, got %d", code)
	}
	if code := gateRequest(t, adminMW.RequireAdmin, "admin"); code != http.StatusOK {
		t.Fatalf("want 200 for admin, got %d", code)
	}
}

func TestSessionFromContext(t *testing.T) {
	mw := NewAuthMiddleware(&stubAuthService{
		token:   "good",
		session: &models.Session{UserID: 7, Username: "admin", Role: models.RoleAdmin},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good"})
	w := httptest.NewRecorder()

	var got *models.Session
	mw.RequireSession(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFromContext(r.Context())
	})(w, req)

	if got == nil || got.UserID != 7 {
		t.Fatalf("session not threaded into context: %+v", got)
	}
}
