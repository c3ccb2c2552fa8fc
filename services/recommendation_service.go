package services

import (
	"context"

	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/models"
	"github.com/sheikh-riyadh/captake-server/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fallbackSize is the fixed window of top-viewed products returned when
// rating-based filtering finds nothing.
const fallbackSize = 4

// RecommendationService derives a seller's recommended products from
// well-rated reviews, falling back to popularity so a seller with any
// active inventory never yields an empty result.
type RecommendationService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
}

func NewRecommendationService(reviews repository.ReviewRepository, products repository.ProductRepository) *RecommendationService {
	return &RecommendationService{reviews: reviews, products: products}
}

// Recommend runs the two-tier lookup. Stage 1 collects distinct product
// ids from the seller's reviews rated above minStar, paginated over the
// review set. Stage 2 fetches the matching active products newest first.
// When stage 2 comes back empty the seller's top-viewed active products
// stand in, with the total recomputed against the fallback's own filter.
func (s *RecommendationService) Recommend(ctx context.Context, sellerID string, minStar float64, limit, page int) ([]models.Product, int64, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}
	if page < 0 {
		page = 0
	}

	rows, err := s.reviews.Aggregate(ctx, ratedProductIDsPipeline(sellerID, minStar, limit, page))
	if err != nil {
		return nil, 0, apperrors.Unavailable("Failed to fetch seller reviews", err)
	}

	productIDs := ratedProductIDs(rows)
	if len(productIDs) > 0 {
		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(int64(limit))
		filter := bson.M{
			"_id":    bson.M{"$in": productIDs},
			"status": models.ProductActive,
		}
		products, err := s.products.Find(ctx, filter, opts)
		if err != nil {
			return nil, 0, apperrors.Unavailable("Failed to fetch recommended products", err)
		}
		if len(products) > 0 {
			total, err := s.reviews.Count(ctx, bson.M{
				"sellerId":      sellerID,
				"rating.rating": bson.M{"$exists": true, "$gt": minStar},
			})
			if err != nil {
				return nil, 0, apperrors.Unavailable("Failed to count seller reviews", err)
			}
			return products, total, nil
		}
	}

	fallbackFilter := bson.M{"status": models.ProductActive, "sellerId": sellerID}
	products, err := s.products.Aggregate(ctx, fallbackPipeline(sellerID, fallbackSize))
	if err != nil {
		return nil, 0, apperrors.Unavailable("Failed to fetch fallback products", err)
	}
	total, err := s.products.Count(ctx, fallbackFilter)
	if err != nil {
		return nil, 0, apperrors.Unavailable("Failed to count fallback products", err)
	}
	return products, total, nil
}

// ratedProductIDs extracts and deduplicates the product object ids from the
// stage-1 aggregation result. Ids that do not parse are dropped.
func ratedProductIDs(rows []bson.M) []primitive.ObjectID {
	if len(rows) == 0 {
		return nil
	}
	raw, ok := rows[0]["productIds"].(primitive.A)
	if !ok {
		return nil
	}

	seen := make(map[string]bool, len(raw))
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, entry := range raw {
		hex, ok := entry.(string)
		if !ok || seen[hex] {
			continue
		}
		seen[hex] = true
		if id, err := primitive.ObjectIDFromHex(hex); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
