package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusReady      = "ready"
	StatusCompleted  = "completed"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusReady, StatusCompleted:
		return true
	}
	return false
}

type OrderItem struct {
	MenuItemID         bson.ObjectID `bson:"menu_item_id" json:"menuItemId"`
	Quantity           int           `bson:"quantity" json:"quantity"`
	PriceAtOrder       float64       `bson:"price_at_order" json:"priceAtOrder"`
	RemovedIngredients []string      `bson:"removed_ingredients,omitempty" json:"removedIngredients,omitempty"`
	SpecialRequest     string        `bson:"special_request,omitempty" json:"specialRequest,omitempty"`
}

type Order struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     bson.ObjectID `bson:"user_id" json:"userId"`
	Items      []OrderItem   `bson:"items" json:"items"`
	Total      float64       `bson:"total" json:"total"`
	Status     string        `bson:"status" json:"status"`
	ChefID     bson.ObjectID `bson:"chef_id,omitempty" json:"chefId,omitempty"`
	FeedbackID bson.ObjectID `bson:"feedback_id,omitempty" json:"feedbackId,omitempty"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
}

// AcceptsFeedback reports whether the order has reached a state where the
// customer can rate it.
func (o *Order) AcceptsFeedback() bool {
	return o.Status == StatusReady || o.Status == StatusCompleted
}
