package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewRating wraps the numeric star rating the way the documents store it.
type ReviewRating struct {
	Rating float64 `bson:"rating" json:"rating" binding:"required,min=1,max=5"`
}

// ReviewProductInfo references the reviewed product.
type ReviewProductInfo struct {
	ProductID string `bson:"productId" json:"productId" binding:"required"`
	Title     string `bson:"title,omitempty" json:"title,omitempty"`
	Image     string `bson:"image,omitempty" json:"image,omitempty"`
}

// Review is created once per completed order and immutable afterwards.
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID       int64              `bson:"orderId" json:"orderId" binding:"required"`
	UserID        string             `bson:"userId" json:"userId" binding:"required"`
	SellerID      string             `bson:"sellerId" json:"sellerId" binding:"required"`
	UserInfo      OrderUserInfo      `bson:"userInfo" json:"userInfo" binding:"required"`
	ProductInfo   ReviewProductInfo  `bson:"productInfo" json:"productInfo" binding:"required"`
	Rating        ReviewRating       `bson:"rating" json:"rating" binding:"required"`
	ReviewMessage string             `bson:"reviewMessage" json:"reviewMessage"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
