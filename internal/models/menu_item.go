package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type MenuItem struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64       `bson:"price" json:"price"`
	Category    string        `bson:"category,omitempty" json:"category,omitempty"`
	Ingredients []string      `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Available   bool          `bson:"available" json:"available"`
	ChefID      bson.ObjectID `bson:"chef_id,omitempty" json:"chefId,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
}
