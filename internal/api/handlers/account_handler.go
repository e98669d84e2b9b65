package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"library-system/internal/models"
	"library-system/internal/services"
	"library-system/internal/utils"
)

type AccountHandler struct {
	accountService services.AccountService
}

func NewAccountHandler(accountService services.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts(r.Context())
	if err != nil {
		log.Printf("list accounts failed: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch accounts")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, accounts)
}

func (h *AccountHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, err := h.accountService.CreateStudent(r.Context(), req.StudentID, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrConflict):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Student ID already exists")
		case errors.Is(err, services.ErrValidation):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		default:
			log.Printf("create student failed: %v", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create student account")
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"message": "Student account created successfully",
	})
}

func (h *AccountHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, err := h.accountService.CreateAdmin(r.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrConflict):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Admin username already exists")
		case errors.Is(err, services.ErrValidation):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		default:
			log.Printf("create admin failed: %v", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create admin account")
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"message": "Admin account created successfully",
	})
}

// DeleteAccount handles DELETE /api/accounts/:type/:id.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/accounts/"), "/")
	if len(parts) != 2 {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), parts[0], id); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid account type")
		case errors.Is(err, services.ErrNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "Account not found")
		default:
			log.Printf("delete account failed: %v", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete account")
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"message": "Account deleted successfully",
	})
}
