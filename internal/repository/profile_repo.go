package repository

import (
	"context"

	"myfragance/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProfileRepo handles MongoDB persistence of computed profiles. The core
// never reads profiles back for ranking; this is the durable record of a
// completed flow.
type ProfileRepo interface {
	Create(ctx context.Context, profile *model.UnifiedProfile) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.UnifiedProfile, error)
	GetByUserID(ctx context.Context, userID string) ([]model.UnifiedProfile, error)
}

type profileRepo struct {
	collection *mongo.Collection
}

// NewProfileRepo creates a new profile repository.
func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepo{
		collection: db.Collection("profiles"),
	}
}

func (r *profileRepo) Create(ctx context.Context, profile *model.UnifiedProfile) error {
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

func (r *profileRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.UnifiedProfile, error) {
	var profile model.UnifiedProfile
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) ([]model.UnifiedProfile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []model.UnifiedProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
