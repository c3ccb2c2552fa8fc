package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminBanner is a site-wide banner; at most one is the default.
type AdminBanner struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Banner  string             `bson:"banner" json:"banner"`
	Default bool               `bson:"default,omitempty" json:"default,omitempty"`
}

// AdminMessage is a broadcast message addressed to a role ("user"/"seller").
type AdminMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	To      string             `bson:"to" json:"to"`
	Subject string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message string             `bson:"message" json:"message"`
	Date    time.Time          `bson:"date" json:"date"`
}
