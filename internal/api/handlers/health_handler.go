package handlers

import (
	"net/http"

	"library-system/internal/utils"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "ok",
		"service": "library-system",
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}
