package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProductActive   = "active"
	ProductInactive = "inactive"
)

// Product is a catalog entry in the seller_products collection.
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SellerID     string             `bson:"sellerId" json:"sellerId"`
	Title        string             `bson:"title" json:"title"`
	Category     string             `bson:"category" json:"category"`
	Brand        string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Images       []string           `bson:"images,omitempty" json:"images,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	SpecialPrice float64            `bson:"specialPrice,omitempty" json:"specialPrice,omitempty"`
	Stock        int                `bson:"stock,omitempty" json:"stock,omitempty"`
	Status       string             `bson:"status" json:"status"`
	Views        int64              `bson:"views" json:"views"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// EffectivePrice is the price used for sorting and display: the discounted
// price when present and positive, else the list price.
func (p Product) EffectivePrice() float64 {
	if p.SpecialPrice > 0 {
		return p.SpecialPrice
	}
	return p.Price
}

// Category is a top-level browse category.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
