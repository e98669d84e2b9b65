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

type BookHandler struct {
	catalogService services.CatalogService
}

func NewBookHandler(catalogService services.CatalogService) *BookHandler {
	return &BookHandler{
		catalogService: catalogService,
	}
}

func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalogService.ListBooks(r.Context())
	if err != nil {
		log.Printf("list books failed: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, books)
}

func (h *BookHandler) ListBooksByCategory(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimPrefix(r.URL.Path, "/api/books/category/")
	if category == "" || strings.Contains(category, "/") {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}

	books, err := h.catalogService.ListBooksByCategory(r.Context(), category)
	if err != nil {
		log.Printf("list books by category failed: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, books)
}

func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, err := h.catalogService.CreateBook(r.Context(), req); err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		log.Printf("create book failed: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to add book")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Book added successfully",
	})
}

// UpdateAvailability handles PUT /api/books/:id/availability.
func (h *BookHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/books/"), "/")
	if len(parts) != 2 || parts[1] != "availability" {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.catalogService.SetAvailability(r.Context(), id, req.IsAvailable); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("update availability failed: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update book availability")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Book availability updated successfully",
	})
}

// DeleteBook handles DELETE /api/books/:id.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/books/")
	if rest == "" || strings.Contains(rest, "/") {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	if err := h.catalogService.DeleteBook(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("delete book failed: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete book")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Book deleted successfully",
	})
}
