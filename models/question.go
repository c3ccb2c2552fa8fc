package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionBody is the buyer-authored part of a Q&A thread.
type QuestionBody struct {
	UserInfo    OrderUserInfo     `bson:"userInfo" json:"userInfo" binding:"required"`
	ProductInfo ReviewProductInfo `bson:"productInfo" json:"productInfo" binding:"required"`
	SellerID    string            `bson:"sellerId" json:"sellerId" binding:"required"`
	Message     string            `bson:"message" json:"message" binding:"required"`
}

// QuestionAnswer is one seller reply on a thread.
type QuestionAnswer struct {
	SellerID  string    `bson:"sellerId" json:"sellerId"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Question is a product Q&A thread: one question, zero or more answers.
type Question struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Question  QuestionBody       `bson:"question" json:"question"`
	Answer    []QuestionAnswer   `bson:"answer" json:"answer"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
	Date      string             `bson:"date" json:"date"`
}
