package repository

import (
	"context"
	"time"

	"myfragance/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PerfumeRepo handles MongoDB operations for the perfume catalog.
type PerfumeRepo interface {
	GetAll(ctx context.Context) ([]model.Perfume, error)
	GetByKey(ctx context.Context, key string) (*model.Perfume, error)
	Upsert(ctx context.Context, perfume *model.Perfume) error
	Count(ctx context.Context) (int64, error)
}

type perfumeRepo struct {
	collection *mongo.Collection
}

// NewPerfumeRepo creates a new perfume repository.
func NewPerfumeRepo(db *mongo.Database) PerfumeRepo {
	return &perfumeRepo{
		collection: db.Collection("perfumes"),
	}
}

func (r *perfumeRepo) GetAll(ctx context.Context) ([]model.Perfume, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var perfumes []model.Perfume
	if err := cursor.All(ctx, &perfumes); err != nil {
		return nil, err
	}
	return perfumes, nil
}

func (r *perfumeRepo) GetByKey(ctx context.Context, key string) (*model.Perfume, error) {
	var perfume model.Perfume
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&perfume)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &perfume, nil
}

func (r *perfumeRepo) Upsert(ctx context.Context, perfume *model.Perfume) error {
	perfume.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": perfume.Key}, perfume, opts)
	return err
}

func (r *perfumeRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
