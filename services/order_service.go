package services

import (
	"context"
	"errors"
	"time"

	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/models"
	"github.com/sheikh-riyadh/captake-server/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BatchResult reports the outcome of a best-effort batch insert. Partial
// failures are listed per item, never rolled back.
type BatchResult struct {
	Inserted int                       `json:"inserted"`
	OrderIDs []int64                   `json:"orderIds"`
	Failed   []repository.FailedInsert `json:"failed,omitempty"`
}

// OrderService owns order batch creation and lifecycle transitions.
type OrderService struct {
	orders    repository.OrderRepository
	allocator *SequenceAllocator
	now       func() time.Time
}

func NewOrderService(orders repository.OrderRepository, allocator *SequenceAllocator) *OrderService {
	return &OrderService{
		orders:    orders,
		allocator: allocator,
		now:       time.Now,
	}
}

// CreateBatch validates a checkout batch, reserves an identifier range
// sized to it, stamps every item, and persists the batch. Ownership and
// argument failures abort before the counter or the collection is touched.
func (s *OrderService) CreateBatch(ctx context.Context, caller models.Identity, items []models.OrderLineItem) (*BatchResult, error) {
	if len(items) == 0 {
		return nil, apperrors.InvalidArgument("Invalid order data")
	}
	for _, item := range items {
		if item.UserInfo.Email != caller.Email {
			return nil, apperrors.Forbidden("Forbidden access")
		}
	}

	firstID, err := s.allocator.ReserveRange(ctx, len(items))
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range items {
		items[i].ID = primitive.NilObjectID
		items[i].OrderID = firstID + int64(i)
		items[i].UserID = items[i].UserInfo.UserID
		items[i].Status = models.OrderPending
		items[i].CreatedAt = now
		items[i].Date = models.DayOfMonth(now)
		items[i].Month = models.MonthAbbrev(now)
		items[i].Year = models.YearNumber(now)
		items[i].UpdatedDate = ""
		items[i].UpdatedMonth = ""
		items[i].UpdatedYear = ""
		items[i].CancelledAt = nil
	}

	inserted, failed, err := s.orders.InsertBatch(ctx, items)
	if err != nil {
		// The counter has already advanced; the gap in the identifier
		// space is accepted, uniqueness still holds.
		return nil, apperrors.Unavailable("Failed to create order", err)
	}

	failedIndex := make(map[int]bool, len(failed))
	for _, f := range failed {
		failedIndex[f.Index] = true
	}
	orderIDs := make([]int64, 0, inserted)
	for i := range items {
		if !failedIndex[i] {
			orderIDs = append(orderIDs, items[i].OrderID)
		}
	}

	return &BatchResult{Inserted: inserted, OrderIDs: orderIDs, Failed: failed}, nil
}

// UpdateStatus applies one guarded lifecycle transition to an order line
// item. The record must exist, belong to the caller, and the transition
// must be a legal edge; illegal transitions leave the record untouched.
func (s *OrderService) UpdateStatus(ctx context.Context, caller models.Identity, idHex, ownerUserID string, newStatus models.OrderStatus) (*models.OrderLineItem, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.InvalidArgument("Invalid order id")
	}
	if !newStatus.Valid() {
		return nil, apperrors.InvalidArgument("Unknown order status")
	}

	item, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, apperrors.Unavailable("Failed to load order", err)
	}

	if item.UserInfo.Email != caller.Email || item.UserID != ownerUserID {
		return nil, apperrors.Forbidden("Forbidden access")
	}
	if !item.Status.CanTransition(newStatus) {
		return nil, apperrors.InvalidState("Order cannot move from " + string(item.Status) + " to " + string(newStatus))
	}

	now := s.now()
	set := bson.M{
		"status":       newStatus,
		"updatedDate":  models.DayOfMonth(now),
		"updatedMonth": models.MonthAbbrev(now),
		"updatedYear":  models.YearNumber(now),
	}
	if newStatus == models.OrderCancelled {
		set["cancelledAt"] = now
	}

	matched, err := s.orders.UpdateOwned(ctx, id, item.UserID, bson.M{"$set": set})
	if err != nil {
		return nil, apperrors.Unavailable("Failed to update order", err)
	}
	if matched == 0 {
		return nil, apperrors.NotFound("Order not found")
	}

	item.Status = newStatus
	item.UpdatedDate = set["updatedDate"].(string)
	item.UpdatedMonth = set["updatedMonth"].(string)
	item.UpdatedYear = set["updatedYear"].(string)
	if newStatus == models.OrderCancelled {
		item.CancelledAt = &now
	}
	return item, nil
}

// ListOrders returns one page of the user's order items plus the total
// count of everything the user owns.
func (s *OrderService) ListOrders(ctx context.Context, userID, search string, page int) ([]models.OrderLineItem, int64, error) {
	items, total, err := s.orders.FindByUserID(ctx, userID, search, page)
	if err != nil {
		return nil, 0, apperrors.Unavailable("Failed to fetch orders", err)
	}
	return items, total, nil
}
