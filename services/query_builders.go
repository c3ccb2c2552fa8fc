package services

import (
	"regexp"

	"github.com/sheikh-riyadh/captake-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Catalog filter and pipeline shapes live here so the query contract is in
// one place and unit-testable without a running database.

func containsPattern(text string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(text), "$options": "i"}
}

// normalizeSortDir collapses any input into 1 (ascending) or -1
// (descending); non-negative values sort ascending.
func normalizeSortDir(dir int) int {
	if dir < 0 {
		return -1
	}
	return 1
}

// searchFilter matches the text case-insensitively against title, category,
// or brand, optionally scoped to one seller.
func searchFilter(title, sellerID string) bson.M {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"title": containsPattern(title)},
			bson.M{"category": containsPattern(title)},
			bson.M{"brand": containsPattern(title)},
		},
	}
	if sellerID != "" {
		filter["sellerId"] = sellerID
	}
	return filter
}

// categoryFilter is the predicate shared by the category page query and its
// total count.
func categoryFilter(category string) bson.M {
	return bson.M{"category": category, "status": models.ProductActive}
}

// computedPricePipeline sorts a category on the effective price: the
// discounted price when present and positive, else the list price.
func computedPricePipeline(category string, limit int, skip int64, sortDir int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: categoryFilter(category)}},
		{{Key: "$addFields", Value: bson.M{
			"sortPrice": bson.M{
				"$cond": bson.M{
					"if":   bson.M{"$gt": bson.A{"$specialPrice", 0}},
					"then": "$specialPrice",
					"else": "$price",
				},
			},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "sortPrice", Value: normalizeSortDir(sortDir)}}}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: limit}},
	}
}

// mostViewedPipeline ranks active products by view count; sellerID narrows
// it to one storefront. Pages here are 0-indexed, as the legacy clients
// send them.
func mostViewedPipeline(sellerID string, limit, page int) mongo.Pipeline {
	match := bson.M{"status": models.ProductActive}
	if sellerID != "" {
		match["sellerId"] = sellerID
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "views", Value: -1}}}},
		{{Key: "$skip", Value: limit * page}},
		{{Key: "$limit", Value: limit}},
	}
}

// ratedProductIDsPipeline collects the distinct product ids reviewed above
// minStar for one seller, paginating over the review set before the
// product lookup happens.
func ratedProductIDsPipeline(sellerID string, minStar float64, limit, page int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"sellerId":      sellerID,
			"rating.rating": bson.M{"$gt": minStar},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: limit * page}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"productIds": bson.M{"$addToSet": "$productInfo.productId"},
		}}},
		{{Key: "$project", Value: bson.M{"_id": 0, "productIds": 1}}},
	}
}

// fallbackPipeline is the recommendation fallback: the seller's top-viewed
// active products, fixed window.
func fallbackPipeline(sellerID string, size int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.ProductActive, "sellerId": sellerID}}},
		{{Key: "$sort", Value: bson.D{{Key: "views", Value: -1}}}},
		{{Key: "$limit", Value: size}},
	}
}
