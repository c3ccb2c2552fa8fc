package repository

import (
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// Legacy clients page orders, reviews, and questions in windows of 10.
const (
	orderPageSize  int64 = 10
	reviewPageSize int64 = 10
)

// pageSkip converts a 1-indexed page into an offset. Pages below 1 clamp
// to the first window.
func pageSkip(page int, limit int64) int64 {
	if page < 1 {
		page = 1
	}
	return int64(page-1) * limit
}

// containsPattern builds a case-insensitive substring match. User input is
// quoted so it can never be interpreted as a regular expression.
func containsPattern(text string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(text), "$options": "i"}
}

// ownedOrderFilter scopes an order query to its owner, optionally matching
// the search term against the order number, calendar date, payment method,
// or status.
func ownedOrderFilter(userID, search string) bson.M {
	if search == "" {
		return bson.M{"userId": userID}
	}
	or := bson.A{
		bson.M{"date": containsPattern(search)},
		bson.M{"paymentMethod": containsPattern(search)},
		bson.M{"status": containsPattern(search)},
	}
	if n, err := strconv.ParseInt(search, 10, 64); err == nil {
		or = append(bson.A{bson.M{"orderId": n}}, or...)
	}
	return bson.M{"userId": userID, "$or": or}
}

// ownedReviewFilter scopes a review query to its owner, optionally matching
// the search term against the order number or review message.
func ownedReviewFilter(userID, search string) bson.M {
	if search == "" {
		return bson.M{"userId": userID}
	}
	or := bson.A{
		bson.M{"reviewMessage": containsPattern(search)},
	}
	if n, err := strconv.ParseInt(search, 10, 64); err == nil {
		or = append(bson.A{bson.M{"orderId": n}}, or...)
	}
	return bson.M{"userId": userID, "$or": or}
}
