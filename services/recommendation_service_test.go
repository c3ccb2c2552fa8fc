package services

import (
	"context"
	"testing"

	"github.com/sheikh-riyadh/captake-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Insert(ctx context.Context, review models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindOne(ctx context.Context, filter bson.M) (*models.Review, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.(*models.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewRepository) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Review, error) {
	args := m.Called(ctx, filter, opts)
	var reviews []models.Review
	if v := args.Get(0); v != nil {
		reviews = v.([]models.Review)
	}
	return reviews, args.Error(1)
}

func (m *MockReviewRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error) {
	args := m.Called(ctx, pipeline)
	var rows []bson.M
	if v := args.Get(0); v != nil {
		rows = v.([]bson.M)
	}
	return rows, args.Error(1)
}

func (m *MockReviewRepository) FindByUserID(ctx context.Context, userID, search string, page int) ([]models.Review, int64, error) {
	args := m.Called(ctx, userID, search, page)
	var reviews []models.Review
	if v := args.Get(0); v != nil {
		reviews = v.([]models.Review)
	}
	return reviews, args.Get(1).(int64), args.Error(2)
}

func TestRecommend_WellRatedProductsWin(t *testing.T) {
	reviews := new(MockReviewRepository)
	products := new(MockProductRepository)
	svc := NewRecommendationService(reviews, products)

	idA := primitive.NewObjectID()
	idB := primitive.NewObjectID()
	rows := []bson.M{{
		"productIds": primitive.A{idA.Hex(), idB.Hex(), idA.Hex(), "not-an-object-id"},
	}}
	reviews.On("Aggregate", mock.Anything, mock.Anything).Return(rows, nil)

	var findFilter bson.M
	products.On("Find", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			findFilter = args.Get(1).(bson.M)
		}).
		Return(sampleProducts(2), nil)

	var countFilter bson.M
	reviews.On("Count", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			countFilter = args.Get(1).(bson.M)
		}).
		Return(int64(9), nil)

	result, total, err := svc.Recommend(context.Background(), "s1", 3, 10, 0)
	require.NoError(t, err)

	assert.Len(t, result, 2)
	assert.Equal(t, int64(9), total)

	// Duplicate and unparseable ids are dropped before the product lookup.
	in := findFilter["_id"].(bson.M)["$in"].([]primitive.ObjectID)
	assert.Equal(t, []primitive.ObjectID{idA, idB}, in)
	assert.Equal(t, models.ProductActive, findFilter["status"])

	assert.Equal(t, "s1", countFilter["sellerId"])
	assert.Equal(t, bson.M{"$exists": true, "$gt": float64(3)}, countFilter["rating.rating"])
	products.AssertNotCalled(t, "Aggregate", mock.Anything, mock.Anything)
}

func TestRecommend_FallsBackWhenNoQualifyingReviews(t *testing.T) {
	reviews := new(MockReviewRepository)
	products := new(MockProductRepository)
	svc := NewRecommendationService(reviews, products)

	reviews.On("Aggregate", mock.Anything, mock.Anything).Return([]bson.M{}, nil)

	popular := sampleProducts(2)
	var pipeline mongo.Pipeline
	products.On("Aggregate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			pipeline = args.Get(1).(mongo.Pipeline)
		}).
		Return(popular, nil)

	var countFilter bson.M
	products.On("Count", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			countFilter = args.Get(1).(bson.M)
		}).
		Return(int64(2), nil)

	result, total, err := svc.Recommend(context.Background(), "s1", 3, 10, 0)
	require.NoError(t, err)

	assert.Equal(t, popular, result)
	assert.Equal(t, int64(2), total, "fallback recomputes the total against its own filter")

	// The fallback window is fixed regardless of the requested limit.
	assert.Equal(t, fallbackSize, pipeline[2][0].Value)
	assert.Equal(t, bson.M{"status": models.ProductActive, "sellerId": "s1"}, countFilter)
	reviews.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
	products.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecommend_FallsBackWhenRatedProductsAreInactive(t *testing.T) {
	reviews := new(MockReviewRepository)
	products := new(MockProductRepository)
	svc := NewRecommendationService(reviews, products)

	rows := []bson.M{{"productIds": primitive.A{primitive.NewObjectID().Hex()}}}
	reviews.On("Aggregate", mock.Anything, mock.Anything).Return(rows, nil)

	// Every reviewed product has since been deactivated.
	products.On("Find", mock.Anything, mock.Anything, mock.Anything).Return([]models.Product{}, nil)
	products.On("Aggregate", mock.Anything, mock.Anything).Return(sampleProducts(1), nil)
	products.On("Count", mock.Anything, mock.Anything).Return(int64(4), nil)

	result, total, err := svc.Recommend(context.Background(), "s1", 3, 10, 0)
	require.NoError(t, err)

	assert.Len(t, result, 1)
	assert.Equal(t, int64(4), total)
	reviews.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestRatedProductIDs(t *testing.T) {
	assert.Nil(t, ratedProductIDs(nil))
	assert.Nil(t, ratedProductIDs([]bson.M{}))
	assert.Nil(t, ratedProductIDs([]bson.M{{"productIds": "wrong-shape"}}))

	id := primitive.NewObjectID()
	ids := ratedProductIDs([]bson.M{{
		"productIds": primitive.A{id.Hex(), id.Hex(), "junk", 42},
	}})
	assert.Equal(t, []primitive.ObjectID{id}, ids)
}
