package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
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

func sellerReviewRouter(repo *MockReviewRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/seller-all-review", NewReviewController(repo).GetSellerReviews)
	return r
}

func TestGetSellerReviews_PagedAndSorted(t *testing.T) {
	repo := new(MockReviewRepository)
	r := sellerReviewRouter(repo)

	var filter bson.M
	var opts *options.FindOptions
	repo.On("Find", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			filter = args.Get(1).(bson.M)
			opts = args.Get(2).(*options.FindOptions)
		}).
		Return([]models.Review{{SellerID: "s1", ReviewMessage: "great"}}, nil)

	var countFilter bson.M
	repo.On("Count", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			countFilter = args.Get(1).(bson.M)
		}).
		Return(int64(25), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/seller-all-review?sellerId=s1&page=3&sortedValue=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":25`)
	assert.Contains(t, w.Body.String(), `"data"`)

	assert.Equal(t, bson.M{"sellerId": "s1"}, filter)
	assert.Equal(t, filter, countFilter, "total must use the page's predicate")

	require.NotNil(t, opts.Sort)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: 1}}, opts.Sort)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(10), *opts.Limit)
	require.NotNil(t, opts.Skip)
	assert.Equal(t, int64(20), *opts.Skip, "page 3 at size 10 skips 20")
}

func TestGetSellerReviews_Defaults(t *testing.T) {
	repo := new(MockReviewRepository)
	r := sellerReviewRouter(repo)

	var opts *options.FindOptions
	repo.On("Find", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			opts = args.Get(2).(*options.FindOptions)
		}).
		Return([]models.Review{}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/seller-all-review?sellerId=s1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, opts.Sort, "newest first by default")
	assert.Equal(t, int64(0), *opts.Skip)
}

func TestGetSellerReviews_StorageFailure(t *testing.T) {
	repo := new(MockReviewRepository)
	r := sellerReviewRouter(repo)

	repo.On("Find", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, mongo.ErrClientDisconnected)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/seller-all-review?sellerId=s1", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
