package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"dineflow-backend/internal/models"
	"dineflow-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type MenuHandler struct {
	menuRepo *repository.MenuItemRepo
}

func NewMenuHandler(menuRepo *repository.MenuItemRepo) *MenuHandler {
	return &MenuHandler{
		menuRepo: menuRepo,
	}
}

type CreateMenuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Available   *bool    `json:"available"`
	ChefID      string   `json:"chefId"`
}

// --- GET /api/menu ---

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.menuRepo.FindAvailable(r.Context())
	if err != nil {
		log.Printf("Error fetching menu items: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// --- GET /api/menu/{id} ---

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item ID"})
		return
	}

	item, err := h.menuRepo.FindByID(r.Context(), id)
	if err != nil {
		log.Printf("Error fetching menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// --- POST /api/menu (admin) ---

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Name == "" || req.Price <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name and a positive price are required"})
		return
	}

	item := &models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Ingredients: req.Ingredients,
		Available:   true,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.ChefID != "" {
		chefID, err := bson.ObjectIDFromHex(req.ChefID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid chef ID"})
			return
		}
		item.ChefID = chefID
	}

	if err := h.menuRepo.Create(r.Context(), item); err != nil {
		log.Printf("Error creating menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create menu item"})
		return
	}

	writeJSON(w, http.StatusCreated, item)
}
