package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"library-system/internal/api/middleware"
	"library-system/internal/models"
	"library-system/internal/services"
	"library-system/internal/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	session, err := h.authService.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, services.ErrInvalidRole):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid role")
		case errors.Is(err, services.ErrValidation):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing credentials")
		default:
			log.Printf("login failed: %v", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	// Not marked Secure: the app is served over plain HTTP. Known weakness.
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(services.SessionTTL.Seconds()),
	})

	utils.WriteJSONResponse(w, http.StatusOK, models.LoginResponse{
		Success: true,
		User:    session.User(),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), middleware.SessionToken(r)); err != nil {
		log.Printf("logout failed: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"message": "Logged out successfully",
	})
}

// CheckSession reports session state without gating: an anonymous caller
// gets isAuthenticated=false with a 200, not a 401.
func (h *AuthHandler) CheckSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.authService.Validate(r.Context(), middleware.SessionToken(r))
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusOK, models.CheckSessionResponse{
			IsAuthenticated: false,
		})
		return
	}

	user := session.User()
	utils.WriteJSONResponse(w, http.StatusOK, models.CheckSessionResponse{
		IsAuthenticated: true,
		User:            &user,
	})
}
