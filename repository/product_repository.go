package repository

import (
	"context"

	"github.com/sheikh-riyadh/captake-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepository is the data access surface for seller_products. Filter
// and pipeline shapes are built by the catalog service so the query
// contract stays in one place.
type ProductRepository interface {
	Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]models.Product, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoProductRepository implements ProductRepository over MongoDB.
type MongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{collection: db.Collection("seller_products")}
}

func (r *MongoProductRepository) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]models.Product, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

// IncrementViews bumps the monotonic view counter. Returns the number of
// matched documents.
func (r *MongoProductRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
	)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}
