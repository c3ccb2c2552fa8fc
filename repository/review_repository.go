package repository

import (
	"context"

	"github.com/sheikh-riyadh/captake-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepository is the data access surface for user_review.
type ReviewRepository interface {
	Insert(ctx context.Context, review models.Review) error
	FindOne(ctx context.Context, filter bson.M) (*models.Review, error)
	Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Review, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	// Aggregate runs a raw pipeline; the recommendation engine builds its
	// rating-filter stages itself.
	Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error)
	FindByUserID(ctx context.Context, userID, search string, page int) ([]models.Review, int64, error)
}

// MongoReviewRepository implements ReviewRepository over MongoDB.
type MongoReviewRepository struct {
	collection *mongo.Collection
}

func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{collection: db.Collection("user_review")}
}

func (r *MongoReviewRepository) Insert(ctx context.Context, review models.Review) error {
	_, err := r.collection.InsertOne(ctx, review)
	return err
}

func (r *MongoReviewRepository) FindOne(ctx context.Context, filter bson.M) (*models.Review, error) {
	var review models.Review
	if err := r.collection.FindOne(ctx, filter).Decode(&review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *MongoReviewRepository) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *MongoReviewRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

func (r *MongoReviewRepository) Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// FindByUserID returns one newest-first page of the user's reviews. The
// total counts all the user's reviews regardless of the search window.
func (r *MongoReviewRepository) FindByUserID(ctx context.Context, userID, search string, page int) ([]models.Review, int64, error) {
	filter := ownedReviewFilter(userID, search)

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(reviewPageSize).
		SetSkip(pageSkip(page, reviewPageSize))

	reviews, err := r.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}
