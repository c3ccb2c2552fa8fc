package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a buyer account. The password is stored but never serialized in
// API responses; reads project it out at the repository layer.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email" binding:"required,email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	FName     string             `bson:"fName" json:"fName" binding:"required"`
	LName     string             `bson:"lName" json:"lName" binding:"required"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Gender    string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Role      string             `bson:"role" json:"role"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Date      string             `bson:"date" json:"date"`
	Month     string             `bson:"month" json:"month"`
	Year      string             `bson:"year" json:"year"`
}

// Address is one saved shipping address owned by a user.
type Address struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID   string             `bson:"userId" json:"userId" binding:"required"`
	Email    string             `bson:"email" json:"email" binding:"required,email"`
	Name     string             `bson:"name" json:"name" binding:"required"`
	Phone    string             `bson:"phone" json:"phone" binding:"required"`
	Division string             `bson:"division,omitempty" json:"division,omitempty"`
	District string             `bson:"district,omitempty" json:"district,omitempty"`
	Area     string             `bson:"area,omitempty" json:"area,omitempty"`
	Street   string             `bson:"street,omitempty" json:"street,omitempty"`
	Default  bool               `bson:"default,omitempty" json:"default,omitempty"`
}

// ReportParty identifies one side of a report (reporter or reported).
type ReportParty struct {
	ID    string `bson:"_id" json:"_id" binding:"required"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
}

// Report is a user complaint against a seller.
type Report struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	From      ReportParty        `bson:"from" json:"from" binding:"required"`
	To        ReportParty        `bson:"to" json:"to" binding:"required"`
	Subject   string             `bson:"subject" json:"subject" binding:"required"`
	Message   string             `bson:"message" json:"message" binding:"required"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// FeedbackUser identifies the submitting user inside a feedback document.
type FeedbackUser struct {
	UserID string `bson:"userId" json:"userId" binding:"required"`
	Email  string `bson:"email" json:"email" binding:"required,email"`
}

// Feedback is a site feedback submission.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User      FeedbackUser       `bson:"user" json:"user" binding:"required"`
	Rating    float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Message   string             `bson:"message" json:"message" binding:"required"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
