package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the lifecycle state of a single order line item.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// orderTransitions enumerates the legal lifecycle edges. Anything absent is
// rejected, including writes that restate the current status.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
}

// CanTransition reports whether moving from s to next is a legal edge.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known status value.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderUserInfo identifies the buyer embedded in each order line item.
type OrderUserInfo struct {
	UserID string `bson:"userId" json:"userId" binding:"required"`
	Email  string `bson:"email" json:"email" binding:"required,email"`
	FName  string `bson:"fName,omitempty" json:"fName,omitempty"`
	LName  string `bson:"lName,omitempty" json:"lName,omitempty"`
}

// OrderProductInfo is the product snapshot captured at checkout time.
type OrderProductInfo struct {
	ProductID string  `bson:"productId" json:"productId" binding:"required"`
	SellerID  string  `bson:"sellerId" json:"sellerId" binding:"required"`
	Title     string  `bson:"title,omitempty" json:"title,omitempty"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity" binding:"required,min=1"`
}

// OrderLineItem is one row per item in a checkout batch. A single checkout
// produces N rows with distinct orderId values.
type OrderLineItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID       int64              `bson:"orderId" json:"orderId"`
	UserID        string             `bson:"userId" json:"userId"`
	UserInfo      OrderUserInfo      `bson:"userInfo" json:"userInfo" binding:"required"`
	ProductInfo   OrderProductInfo   `bson:"productInfo" json:"productInfo" binding:"required"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod" binding:"required"`
	Status        OrderStatus        `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	Date          string             `bson:"date" json:"date"`
	Month         string             `bson:"month" json:"month"`
	Year          string             `bson:"year" json:"year"`
	UpdatedDate   string             `bson:"updatedDate,omitempty" json:"updatedDate,omitempty"`
	UpdatedMonth  string             `bson:"updatedMonth,omitempty" json:"updatedMonth,omitempty"`
	UpdatedYear   string             `bson:"updatedYear,omitempty" json:"updatedYear,omitempty"`
	CancelledAt   *time.Time         `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
}
