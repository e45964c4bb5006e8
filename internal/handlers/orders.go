package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"dineflow-backend/internal/middleware"
	"dineflow-backend/internal/models"
	"dineflow-backend/internal/notify"
	"dineflow-backend/internal/repository"
	"dineflow-backend/internal/sentiment"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type OrderHandler struct {
	orderRepo    *repository.OrderRepo
	menuRepo     *repository.MenuItemRepo
	feedbackRepo *repository.FeedbackRepo
	analyzer     *sentiment.Analyzer
	notifier     notify.Notifier
}

func NewOrderHandler(orderRepo *repository.OrderRepo, menuRepo *repository.MenuItemRepo, feedbackRepo *repository.FeedbackRepo, analyzer *sentiment.Analyzer, notifier notify.Notifier) *OrderHandler {
	return &OrderHandler{
		orderRepo:    orderRepo,
		menuRepo:     menuRepo,
		feedbackRepo: feedbackRepo,
		analyzer:     analyzer,
		notifier:     notifier,
	}
}

// --- Request types ---

type CreateOrderItem struct {
	MenuItemID         string   `json:"menuItemId"`
	Quantity           int      `json:"quantity"`
	PriceAtOrder       float64  `json:"priceAtOrder"`
	RemovedIngredients []string `json:"removedIngredients"`
	SpecialRequest     string   `json:"specialRequest"`
}

type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items"`
	Total float64           `json:"total"`
}

type FeedbackItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type SubmitFeedbackRequest struct {
	OrderID        string                `json:"orderId"`
	Items          []FeedbackItemRequest `json:"items"`
	IdempotencyKey string                `json:"idempotencyKey"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// --- POST /api/orders ---

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "items array is required and cannot be empty"})
		return
	}
	if req.Total <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "total amount is required"})
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 || item.PriceAtOrder <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "each item must have menuItemId, quantity, and priceAtOrder"})
			return
		}
		menuItemID, err := bson.ObjectIDFromHex(item.MenuItemID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item ID"})
			return
		}

		// Verify menu item exists
		menuItem, err := h.menuRepo.FindByID(r.Context(), menuItemID)
		if err != nil {
			log.Printf("Error fetching menu item: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			return
		}
		if menuItem == nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("menu item with ID %s not found", item.MenuItemID)})
			return
		}

		items = append(items, models.OrderItem{
			MenuItemID:         menuItemID,
			Quantity:           item.Quantity,
			PriceAtOrder:       item.PriceAtOrder,
			RemovedIngredients: item.RemovedIngredients,
			SpecialRequest:     item.SpecialRequest,
		})
	}

	order := &models.Order{
		UserID: userID,
		Items:  items,
		Total:  req.Total,
		Status: models.StatusPending,
	}
	if err := h.orderRepo.Create(r.Context(), order); err != nil {
		log.Printf("Error creating order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create order"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"orderId": order.ID,
		"order":   order,
	})
}

// --- POST /api/orders/feedback ---

func (h *OrderHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "items array is required"})
		return
	}
	if req.IdempotencyKey == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "idempotencyKey is required"})
		return
	}

	// Idempotency check — prevent duplicate submissions
	existing, err := h.feedbackRepo.FindByIdempotencyKey(r.Context(), req.IdempotencyKey)
	if err != nil {
		log.Printf("Error checking idempotency: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if existing != nil {
		// Already submitted — return the existing feedback (idempotent behavior)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":  "feedback already submitted",
			"feedback": existing,
		})
		return
	}

	orderID, err := bson.ObjectIDFromHex(req.OrderID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	order, err := h.orderRepo.FindByIDAndUser(r.Context(), orderID, userID)
	if err != nil {
		log.Printf("Error fetching order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if order == nil || !order.AcceptsFeedback() {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found or not eligible for feedback"})
		return
	}
	if !order.FeedbackID.IsZero() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "feedback already submitted"})
		return
	}

	items := make([]models.FeedbackItem, 0, len(req.Items))
	var ratingSum float64
	for _, item := range req.Items {
		if item.Rating < 1 || item.Rating > 5 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "each rating must be between 1 and 5"})
			return
		}
		menuItemID, err := bson.ObjectIDFromHex(item.MenuItemID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item ID"})
			return
		}
		items = append(items, models.FeedbackItem{
			MenuItemID: menuItemID,
			Rating:     item.Rating,
			Comment:    item.Comment,
		})
		ratingSum += float64(item.Rating)
	}

	feedback := &models.Feedback{
		UserID:         userID,
		OrderID:        orderID,
		Items:          items,
		AverageRating:  sentiment.Round2(ratingSum / float64(len(items))),
		IdempotencyKey: req.IdempotencyKey,
	}
	if err := h.feedbackRepo.Create(r.Context(), feedback); err != nil {
		log.Printf("Error creating feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to submit feedback"})
		return
	}

	if err := h.orderRepo.SetFeedback(r.Context(), orderID, feedback.ID); err != nil {
		log.Printf("Error linking feedback to order: %v", err)
	}

	// Alert the kitchen in a background goroutine when the submission
	// itself already looks high-risk (non-blocking).
	records := make([]sentiment.Record, len(items))
	for i, item := range items {
		records[i] = sentiment.Record{Rating: item.Rating, Comment: item.Comment}
	}
	if summary := h.analyzer.Summarize(records); summary.RiskLevel == sentiment.RiskHigh {
		go func() {
			message := formatRiskAlert(order.ID.Hex(), summary)
			if err := h.notifier.Publish(context.Background(), "High-risk feedback received", message); err != nil {
				log.Printf("Error publishing risk alert: %v", err)
			}
		}()
	}

	writeJSON(w, http.StatusCreated, feedback)
}

// --- GET /api/orders/{id}/feedback ---
//
// Customers read back the feedback they submitted; chefs and admins can
// pull it for any order.

func (h *OrderHandler) OrderFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	orderID, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	var order *models.Order
	if models.StaffRole(middleware.GetRole(r.Context())) {
		order, err = h.orderRepo.FindByID(r.Context(), orderID)
	} else {
		order, err = h.orderRepo.FindByIDAndUser(r.Context(), orderID, userID)
	}
	if err != nil {
		log.Printf("Error fetching order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if order == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	feedback, err := h.feedbackRepo.FindByOrder(r.Context(), orderID)
	if err != nil {
		log.Printf("Error fetching feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if feedback == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no feedback submitted for this order"})
		return
	}

	writeJSON(w, http.StatusOK, feedback)
}

// --- PATCH /api/orders/{id}/status (chef/admin) ---

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if !models.ValidStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		return
	}

	order, err := h.orderRepo.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		log.Printf("Error updating order status: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if order == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// --- POST /api/orders/{id}/assign-chef (chef) ---

func (h *OrderHandler) AssignChef(w http.ResponseWriter, r *http.Request) {
	chefID, ok := callerID(w, r)
	if !ok {
		return
	}

	orderID, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	order, err := h.orderRepo.FindByID(r.Context(), orderID)
	if err != nil {
		log.Printf("Error fetching order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if order == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	if err := h.orderRepo.AssignChef(r.Context(), orderID, chefID); err != nil {
		log.Printf("Error assigning chef: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to assign chef"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "chef assigned to this order"})
}

// --- GET /api/orders/my-orders ---

func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	orders, err := h.orderRepo.FindByUser(r.Context(), userID)
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// --- GET /api/orders/all-orders (admin) ---

func (h *OrderHandler) AllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderRepo.FindAll(r.Context())
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// --- GET /api/orders/{id} ---

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	orderID, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	order, err := h.orderRepo.FindByIDAndUser(r.Context(), orderID, userID)
	if err != nil {
		log.Printf("Error fetching order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if order == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// --- Helpers ---

// callerID extracts and parses the authenticated user's id, writing the
// error response itself when the request is unusable.
func callerID(w http.ResponseWriter, r *http.Request) (bson.ObjectID, bool) {
	userIDHex := middleware.GetUserID(r.Context())
	if userIDHex == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return bson.ObjectID{}, false
	}
	userID, err := bson.ObjectIDFromHex(userIDHex)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user ID"})
		return bson.ObjectID{}, false
	}
	return userID, true
}

func formatRiskAlert(orderID string, summary sentiment.Summary) string {
	message := fmt.Sprintf("Order %s was rated %.2f with %d negative comment(s).",
		orderID, summary.AverageRating, summary.SentimentBreakdown.Negative)
	for _, insight := range summary.Insights {
		message += "\n- " + insight
	}
	return message
}
