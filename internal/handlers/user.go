package handlers

import (
	"log"
	"net/http"

	"dineflow-backend/internal/models"
	"dineflow-backend/internal/repository"
)

type UserHandler struct {
	userRepo *repository.UserRepo
}

func NewUserHandler(userRepo *repository.UserRepo) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

// --- GET /api/users?role=chef ---

func (h *UserHandler) ListByRole(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if role == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "role query parameter is required"})
		return
	}

	users, err := h.userRepo.FindByRole(r.Context(), role)
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch users"})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}
