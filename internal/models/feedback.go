package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// FeedbackItem is one rated line item inside a feedback document. A single
// feedback document covers every dish of the order it belongs to.
type FeedbackItem struct {
	MenuItemID bson.ObjectID `bson:"menu_item_id" json:"menuItemId"`
	Rating     int           `bson:"rating" json:"rating"`
	Comment    string        `bson:"comment,omitempty" json:"comment,omitempty"`
}

type Feedback struct {
	ID             bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID         bson.ObjectID  `bson:"user_id" json:"userId"`
	OrderID        bson.ObjectID  `bson:"order_id" json:"orderId"`
	Items          []FeedbackItem `bson:"items" json:"items"`
	AverageRating  float64        `bson:"average_rating" json:"averageRating"`
	IdempotencyKey string         `bson:"idempotency_key" json:"idempotencyKey"`
	CreatedAt      time.Time      `bson:"created_at" json:"createdAt"`
}

// ItemFor returns the line item for the given menu item, if the document
// contains one.
func (f *Feedback) ItemFor(menuItemID bson.ObjectID) (FeedbackItem, bool) {
	for _, item := range f.Items {
		if item.MenuItemID == menuItemID {
			return item, true
		}
	}
	return FeedbackItem{}, false
}
