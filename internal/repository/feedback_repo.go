package repository

import (
	"context"
	"time"

	"dineflow-backend/internal/database"
	"dineflow-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type FeedbackRepo struct {
	collection *mongo.Collection
}

func NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{
		collection: database.GetCollection("feedbacks"),
	}
}

func (r *FeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return err
	}
	feedback.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// FindByIdempotencyKey checks if feedback with this key already exists (duplicate prevention)
func (r *FeedbackRepo) FindByIdempotencyKey(ctx context.Context, key string) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.collection.FindOne(ctx, bson.M{"idempotency_key": key}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackRepo) FindByOrder(ctx context.Context, orderID bson.ObjectID) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

// FindByUserAndMenuItem returns one user's feedback documents that rate the
// given menu item. A document qualifies when any of its line items
// references the item; callers extract the matching line item themselves.
func (r *FeedbackRepo) FindByUserAndMenuItem(ctx context.Context, userID, menuItemID bson.ObjectID) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{
		"user_id":            userID,
		"items.menu_item_id": menuItemID,
	}, opts)
	if err != nil {
		return nil, err
	}
	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// FindByMenuItem returns every feedback document rating the given menu item,
// across all users.
func (r *FeedbackRepo) FindByMenuItem(ctx context.Context, menuItemID bson.ObjectID) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{
		"items.menu_item_id": menuItemID,
	}, opts)
	if err != nil {
		return nil, err
	}
	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// FindCreatedSince returns all feedback created on or after the given time.
// Feeds the admin trend window.
func (r *FeedbackRepo) FindCreatedSince(ctx context.Context, since time.Time) ([]models.Feedback, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"created_at": bson.M{"$gte": since}})
	if err != nil {
		return nil, err
	}
	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// EnsureIndexes creates necessary indexes for the feedbacks collection
func (r *FeedbackRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "idempotency_key", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "items.menu_item_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "items.menu_item_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
