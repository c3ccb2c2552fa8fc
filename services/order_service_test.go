package services

import (
	"context"
	"testing"
	"time"

	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/models"
	"github.com/sheikh-riyadh/captake-server/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) InsertBatch(ctx context.Context, items []models.OrderLineItem) (int, []repository.FailedInsert, error) {
	args := m.Called(ctx, items)
	var failed []repository.FailedInsert
	if f := args.Get(1); f != nil {
		failed = f.([]repository.FailedInsert)
	}
	return args.Int(0), failed, args.Error(2)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.OrderLineItem, error) {
	args := m.Called(ctx, id)
	if item := args.Get(0); item != nil {
		return item.(*models.OrderLineItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) UpdateOwned(ctx context.Context, id primitive.ObjectID, userID string, update bson.M) (int64, error) {
	args := m.Called(ctx, id, userID, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID, search string, page int) ([]models.OrderLineItem, int64, error) {
	args := m.Called(ctx, userID, search, page)
	var items []models.OrderLineItem
	if v := args.Get(0); v != nil {
		items = v.([]models.OrderLineItem)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

var testCaller = models.Identity{UserID: "u1", Email: "buyer@example.com"}

func lineItem(email string) models.OrderLineItem {
	return models.OrderLineItem{
		UserInfo: models.OrderUserInfo{UserID: "u1", Email: email},
		ProductInfo: models.OrderProductInfo{
			ProductID: "p1",
			SellerID:  "s1",
			Price:     120,
			Quantity:  1,
		},
		PaymentMethod: "cash_on_delivery",
	}
}

func newTestOrderService(repo repository.OrderRepository, counters repository.CounterStore) *OrderService {
	svc := NewOrderService(repo, NewSequenceAllocator(counters))
	svc.now = func() time.Time { return time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateBatch_RejectsEmptyBatch(t *testing.T) {
	repo := new(MockOrderRepository)
	counters := &fakeCounterStore{}
	svc := newTestOrderService(repo, counters)

	_, err := svc.CreateBatch(context.Background(), testCaller, nil)

	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
	assert.Zero(t, counters.calls, "counter must not advance for a rejected batch")
	repo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
}

func TestCreateBatch_ForbiddenOnEmailMismatchBeforeAnyWrite(t *testing.T) {
	repo := new(MockOrderRepository)
	counters := &fakeCounterStore{}
	svc := newTestOrderService(repo, counters)

	items := []models.OrderLineItem{
		lineItem("buyer@example.com"),
		lineItem("someone-else@example.com"),
	}
	_, err := svc.CreateBatch(context.Background(), testCaller, items)

	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	assert.Zero(t, counters.calls)
	repo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
}

func TestCreateBatch_StampsSequentialIDsAndPendingStatus(t *testing.T) {
	repo := new(MockOrderRepository)
	counters := &fakeCounterStore{seq: 100}
	svc := newTestOrderService(repo, counters)

	var stamped []models.OrderLineItem
	repo.On("InsertBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stamped = args.Get(1).([]models.OrderLineItem)
		}).
		Return(3, nil, nil)

	items := []models.OrderLineItem{
		lineItem("buyer@example.com"),
		lineItem("buyer@example.com"),
		lineItem("buyer@example.com"),
	}
	result, err := svc.CreateBatch(context.Background(), testCaller, items)
	require.NoError(t, err)

	// Counter went 100 -> 103, so the batch owns 101..103.
	require.Len(t, stamped, 3)
	for i, item := range stamped {
		assert.Equal(t, int64(101+i), item.OrderID)
		assert.Equal(t, models.OrderPending, item.Status)
		assert.Equal(t, "u1", item.UserID)
		assert.Equal(t, "7", item.Date)
		assert.Equal(t, "Mar", item.Month)
		assert.Equal(t, "2024", item.Year)
		assert.Empty(t, item.UpdatedDate)
		assert.Nil(t, item.CancelledAt)
	}

	assert.Equal(t, 3, result.Inserted)
	assert.Equal(t, []int64{101, 102, 103}, result.OrderIDs)
	assert.Empty(t, result.Failed)
}

func TestCreateBatch_PartialFailureKeepsSurvivors(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := newTestOrderService(repo, &fakeCounterStore{})

	failed := []repository.FailedInsert{{Index: 1, Reason: "duplicate key"}}
	repo.On("InsertBatch", mock.Anything, mock.Anything).Return(2, failed, nil)

	items := []models.OrderLineItem{
		lineItem("buyer@example.com"),
		lineItem("buyer@example.com"),
		lineItem("buyer@example.com"),
	}
	result, err := svc.CreateBatch(context.Background(), testCaller, items)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, []int64{1, 3}, result.OrderIDs, "the failed item's id must be skipped")
	assert.Equal(t, failed, result.Failed)
}

func TestUpdateStatus_InvalidIDAndStatus(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := newTestOrderService(repo, &fakeCounterStore{})

	_, err := svc.UpdateStatus(context.Background(), testCaller, "not-a-hex-id", "u1", models.OrderCancelled)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))

	id := primitive.NewObjectID().Hex()
	_, err = svc.UpdateStatus(context.Background(), testCaller, id, "u1", models.OrderStatus("refunded"))
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := newTestOrderService(repo, &fakeCounterStore{})

	id := primitive.NewObjectID()
	repo.On("FindByID", mock.Anything, id).Return(nil, mongo.ErrNoDocuments)

	_, err := svc.UpdateStatus(context.Background(), testCaller, id.Hex(), "u1", models.OrderCancelled)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestUpdateStatus_ForbiddenForForeignOrder(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := newTestOrderService(repo, &fakeCounterStore{})

	id := primitive.NewObjectID()
	stored := lineItem("someone-else@example.com")
	stored.ID = id
	stored.UserID = "u2"
	stored.Status = models.OrderPending
	repo.On("FindByID", mock.Anything, id).Return(&stored, nil)

	_, err := svc.UpdateStatus(context.Background(), testCaller, id.Hex(), "u2", models.OrderCancelled)

	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	repo.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_IllegalTransitionLeavesRecordUntouched(t *testing.T) {
	cases := []struct {
		from models.OrderStatus
		to   models.OrderStatus
	}{
		{models.OrderShipped, models.OrderPending},
		{models.OrderShipped, models.OrderCancelled},
		{models.OrderDelivered, models.OrderCancelled},
		{models.OrderCancelled, models.OrderProcessing},
		{models.OrderPending, models.OrderPending},
		{models.OrderPending, models.OrderDelivered},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			repo := new(MockOrderRepository)
			svc := newTestOrderService(repo, &fakeCounterStore{})

			id := primitive.NewObjectID()
			stored := lineItem("buyer@example.com")
			stored.ID = id
			stored.UserID = "u1"
			stored.Status = tc.from
			repo.On("FindByID", mock.Anything, id).Return(&stored, nil)

			_, err := svc.UpdateStatus(context.Background(), testCaller, id.Hex(), "u1", tc.to)

			assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
			repo.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateStatus_CancelStampsCancelledAt(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := newTestOrderService(repo, &fakeCounterStore{})

	id := primitive.NewObjectID()
	stored := lineItem("buyer@example.com")
	stored.ID = id
	stored.UserID = "u1"
	stored.Status = models.OrderPending
	repo.On("FindByID", mock.Anything, id).Return(&stored, nil)

	var update bson.M
	repo.On("UpdateOwned", mock.Anything, id, "u1", mock.Anything).
		Run(func(args mock.Arguments) {
			update = args.Get(3).(bson.M)
		}).
		Return(int64(1), nil)

	item, err := svc.UpdateStatus(context.Background(), testCaller, id.Hex(), "u1", models.OrderCancelled)
	require.NoError(t, err)

	set := update["$set"].(bson.M)
	assert.Equal(t, models.OrderCancelled, set["status"])
	assert.NotNil(t, set["cancelledAt"])
	assert.Equal(t, "7", set["updatedDate"])
	assert.Equal(t, "Mar", set["updatedMonth"])
	assert.Equal(t, "2024", set["updatedYear"])

	assert.Equal(t, models.OrderCancelled, item.Status)
	require.NotNil(t, item.CancelledAt)
}

func TestListOrders_ReadsOnly(t *testing.T) {
	repo := new(MockOrderRepository)
	counters := &fakeCounterStore{}
	svc := newTestOrderService(repo, counters)

	stored := []models.OrderLineItem{lineItem("buyer@example.com")}
	repo.On("FindByUserID", mock.Anything, "u1", "", 1).Return(stored, int64(1), nil)

	items, total, err := svc.ListOrders(context.Background(), "u1", "", 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(1), total)

	// Listing must not touch the counter or issue any write.
	assert.Zero(t, counters.calls)
	repo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_ForwardTransition(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := newTestOrderService(repo, &fakeCounterStore{})

	id := primitive.NewObjectID()
	stored := lineItem("buyer@example.com")
	stored.ID = id
	stored.UserID = "u1"
	stored.Status = models.OrderProcessing
	repo.On("FindByID", mock.Anything, id).Return(&stored, nil)
	repo.On("UpdateOwned", mock.Anything, id, "u1", mock.Anything).Return(int64(1), nil)

	item, err := svc.UpdateStatus(context.Background(), testCaller, id.Hex(), "u1", models.OrderShipped)
	require.NoError(t, err)

	assert.Equal(t, models.OrderShipped, item.Status)
	assert.Nil(t, item.CancelledAt)
}
