package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

func (r *ResultRepository) Create(ctx context.Context, result *models.StoredResult) error {
	res, err := r.Col.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid.Hex()
	}
	return nil
}

// FindBySession returns the newest stored result for a session, or nil when
// the session never finished a submission attempt.
func (r *ResultRepository) FindBySession(ctx context.Context, sessionID string) (*models.StoredResult, error) {
	opts := options.FindOne().SetSort(bson.M{"created_at": -1})
	var result models.StoredResult
	err := r.Col.FindOne(ctx, bson.M{"session_id": sessionID}, opts).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
