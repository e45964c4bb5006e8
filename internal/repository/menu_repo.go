package repository

import (
	"context"
	"time"

	"dineflow-backend/internal/database"
	"dineflow-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type MenuItemRepo struct {
	collection *mongo.Collection
}

func NewMenuItemRepo() *MenuItemRepo {
	return &MenuItemRepo{
		collection: database.GetCollection("menu_items"),
	}
}

func (r *MenuItemRepo) FindAvailable(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"available": true})
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuItemRepo) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuItemRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepo) Create(ctx context.Context, item *models.MenuItem) error {
	item.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	item.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *MenuItemRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates necessary indexes for the menu_items collection
func (r *MenuItemRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "available", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "chef_id", Value: 1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
