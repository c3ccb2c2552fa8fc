package repository

import (
	"context"
	"errors"

	"github.com/sheikh-riyadh/captake-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FailedInsert describes one item of a batch that the storage engine
// rejected during a best-effort insert.
type FailedInsert struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// OrderRepository is the data access surface for the user_order collection.
type OrderRepository interface {
	// InsertBatch performs an unordered multi-document insert. Partial
	// success is reported, not rolled back.
	InsertBatch(ctx context.Context, items []models.OrderLineItem) (inserted int, failed []FailedInsert, err error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.OrderLineItem, error)
	// UpdateOwned applies update to the item only when it is owned by
	// userID. Returns the number of matched documents.
	UpdateOwned(ctx context.Context, id primitive.ObjectID, userID string, update bson.M) (int64, error)
	FindByUserID(ctx context.Context, userID, search string, page int) ([]models.OrderLineItem, int64, error)
}

// MongoOrderRepository implements OrderRepository over MongoDB.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{collection: db.Collection("user_order")}
}

func (r *MongoOrderRepository) InsertBatch(ctx context.Context, items []models.OrderLineItem) (int, []FailedInsert, error) {
	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, item)
	}

	result, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))

	var inserted int
	if result != nil {
		inserted = len(result.InsertedIDs)
	}

	if err != nil {
		var bulkErr mongo.BulkWriteException
		if errors.As(err, &bulkErr) {
			failed := make([]FailedInsert, 0, len(bulkErr.WriteErrors))
			for _, we := range bulkErr.WriteErrors {
				failed = append(failed, FailedInsert{Index: we.Index, Reason: we.Message})
			}
			// With unordered inserts every item not in the error list
			// landed, so this is a partial success, not a failure.
			if inserted == 0 {
				inserted = len(items) - len(failed)
			}
			return inserted, failed, nil
		}
		return inserted, nil, err
	}
	return inserted, nil, nil
}

func (r *MongoOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.OrderLineItem, error) {
	var item models.OrderLineItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MongoOrderRepository) UpdateOwned(ctx context.Context, id primitive.ObjectID, userID string, update bson.M) (int64, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "userId": userID},
		update,
	)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// FindByUserID returns one newest-first page of the user's order items.
// The optional search matches orderId, calendar date, payment method, or
// status; the total is the count of all the user's items regardless of the
// search window.
func (r *MongoOrderRepository) FindByUserID(ctx context.Context, userID, search string, page int) ([]models.OrderLineItem, int64, error) {
	filter := ownedOrderFilter(userID, search)

	skip := pageSkip(page, orderPageSize)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(orderPageSize).
		SetSkip(skip)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := []models.OrderLineItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
