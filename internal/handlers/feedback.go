package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"dineflow-backend/internal/insights"
	"dineflow-backend/internal/models"
	"dineflow-backend/internal/repository"
	"dineflow-backend/internal/sentiment"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// defaultTrendDays is the admin analytics window when ?days= is absent.
const defaultTrendDays = 30

type FeedbackHandler struct {
	feedbackRepo *repository.FeedbackRepo
	orderRepo    *repository.OrderRepo
	menuRepo     *repository.MenuItemRepo
	userRepo     *repository.UserRepo
	analyzer     *sentiment.Analyzer
}

func NewFeedbackHandler(feedbackRepo *repository.FeedbackRepo, orderRepo *repository.OrderRepo, menuRepo *repository.MenuItemRepo, userRepo *repository.UserRepo, analyzer *sentiment.Analyzer) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackRepo: feedbackRepo,
		orderRepo:    orderRepo,
		menuRepo:     menuRepo,
		userRepo:     userRepo,
		analyzer:     analyzer,
	}
}

// --- GET /api/feedback/user-menu-item/{userID}/{menuItemID} (chef) ---
//
// One customer's history with one dish, summarized for the chef working
// their current order.

func (h *FeedbackHandler) UserMenuItemInsight(w http.ResponseWriter, r *http.Request) {
	userID, err := bson.ObjectIDFromHex(chi.URLParam(r, "userID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user ID"})
		return
	}
	menuItemID, err := bson.ObjectIDFromHex(chi.URLParam(r, "menuItemID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item ID"})
		return
	}

	docs, err := h.feedbackRepo.FindByUserAndMenuItem(r.Context(), userID, menuItemID)
	if err != nil {
		log.Printf("Error fetching feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, insights.BuildPersonal(h.analyzer, docs, menuItemID))
}

// --- GET /api/feedback/menu-item/{menuItemID} (chef) ---
//
// Aggregate insight for one dish across all customers.

func (h *FeedbackHandler) MenuItemInsight(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := bson.ObjectIDFromHex(chi.URLParam(r, "menuItemID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item ID"})
		return
	}

	item, err := h.menuRepo.FindByID(r.Context(), menuItemID)
	if err != nil {
		log.Printf("Error fetching menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}

	docs, err := h.feedbackRepo.FindByMenuItem(r.Context(), menuItemID)
	if err != nil {
		log.Printf("Error fetching feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	userNames, err := h.resolveUserNames(r, docs)
	if err != nil {
		log.Printf("Error resolving user names: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, insights.BuildMenuItem(h.analyzer, docs, menuItemID, userNames))
}

// --- GET /api/feedback/analytics/admin?days=30 (admin) ---

func (h *FeedbackHandler) AdminAnalytics(w http.ResponseWriter, r *http.Request) {
	days := defaultTrendDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	now := time.Now().UTC()
	// Fetch back to the start of the preceding comparison window; the
	// builder partitions records into the two windows itself.
	since := now.AddDate(0, 0, -(2*days + 2))

	feedback, err := h.feedbackRepo.FindCreatedSince(r.Context(), since)
	if err != nil {
		log.Printf("Error fetching feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	orders, err := h.orderRepo.FindCreatedSince(r.Context(), since)
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	menuItems, err := h.menuRepo.FindAll(r.Context())
	if err != nil {
		log.Printf("Error fetching menu items: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	chefs, err := h.userRepo.FindByRole(r.Context(), models.RoleChef)
	if err != nil {
		log.Printf("Error fetching chefs: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, insights.BuildAdminAnalytics(now, days, feedback, orders, menuItems, chefs))
}

// resolveUserNames maps the submitter of each feedback document to their
// display name.
func (h *FeedbackHandler) resolveUserNames(r *http.Request, docs []models.Feedback) (map[bson.ObjectID]string, error) {
	names := make(map[bson.ObjectID]string)
	for _, doc := range docs {
		if _, done := names[doc.UserID]; done {
			continue
		}
		user, err := h.userRepo.FindByID(r.Context(), doc.UserID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			names[doc.UserID] = user.Name
		} else {
			names[doc.UserID] = ""
		}
	}
	return names, nil
}
