package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seller is a seller account. List endpoints project down to the public
// fields (logo, businessName).
type Seller struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	BusinessName string             `bson:"businessName" json:"businessName"`
	Logo         string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// SellerBanner is a storefront banner image; at most one per seller is the
// default.
type SellerBanner struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SellerID string             `bson:"sellerId" json:"sellerId"`
	Banner   string             `bson:"banner" json:"banner"`
	Default  bool               `bson:"default,omitempty" json:"default,omitempty"`
}

// SellerStorefront pairs the default banner with the store's public info.
type SellerStorefront struct {
	Banner *SellerBanner `json:"banner"`
	Store  *Seller       `json:"store"`
}

// ReturnPolicy is the seller's return policy text.
type ReturnPolicy struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SellerID string             `bson:"sellerId" json:"sellerId"`
	Policy   string             `bson:"policy" json:"policy"`
}

// Brand is one brand a seller carries.
type Brand struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SellerID string             `bson:"sellerId" json:"sellerId"`
	Name     string             `bson:"name" json:"name"`
	Logo     string             `bson:"logo,omitempty" json:"logo,omitempty"`
}

// Announcement is the seller's storefront announcement.
type Announcement struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SellerID string             `bson:"sellerId" json:"sellerId"`
	Message  string             `bson:"message" json:"message"`
}
