package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CounterStore is the atomic fetch-and-increment primitive backing order
// identifier allocation.
type CounterStore interface {
	// FetchAndIncrement applies delta to the named counter in a single
	// atomic operation and returns the post-increment value. A missing
	// counter is created with value 0 before the delta is applied.
	FetchAndIncrement(ctx context.Context, name string, delta int64) (int64, error)
}

// MongoCounterStore implements CounterStore over the counters collection.
type MongoCounterStore struct {
	collection *mongo.Collection
}

func NewMongoCounterStore(db *mongo.Database) *MongoCounterStore {
	return &MongoCounterStore{collection: db.Collection("counters")}
}

// FetchAndIncrement runs one findOneAndUpdate with $inc and upsert, so no
// caller can observe a torn read or lose a delta under concurrency.
func (s *MongoCounterStore) FetchAndIncrement(ctx context.Context, name string, delta int64) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var raw bson.Raw
	err := s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": delta}},
		opts,
	).Decode(&raw)
	if err != nil {
		return 0, fmt.Errorf("counter %q increment failed: %w", name, err)
	}

	seq, ok := resolveSeq(raw)
	if !ok {
		return 0, fmt.Errorf("counter %q returned an unresolvable sequence value", name)
	}
	return seq, nil
}

// resolveSeq extracts the post-increment sequence from the returned
// document. Older client versions wrap the updated record in a "value"
// subdocument, so both shapes are resolved; anything non-numeric is
// reported as a failure rather than coerced.
func resolveSeq(raw bson.Raw) (int64, bool) {
	if val, err := raw.LookupErr("seq"); err == nil {
		return numericValue(val)
	}
	if wrapped, err := raw.LookupErr("value"); err == nil {
		if doc, ok := wrapped.DocumentOK(); ok {
			if val, err := doc.LookupErr("seq"); err == nil {
				return numericValue(val)
			}
		}
	}
	return 0, false
}

func numericValue(val bson.RawValue) (int64, bool) {
	switch val.Type {
	case bsontype.Int64:
		return val.Int64(), true
	case bsontype.Int32:
		return int64(val.Int32()), true
	case bsontype.Double:
		f := val.Double()
		if f != float64(int64(f)) {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}
