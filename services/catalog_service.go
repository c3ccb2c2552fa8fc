package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/cache"
	"github.com/sheikh-riyadh/captake-server/models"
	"github.com/sheikh-riyadh/captake-server/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPageLimit   = 10
	storefrontPreview  = 6
	mostViewedCacheTTL = 30 * time.Second
)

// pagedProducts is the cacheable shape of a paginated catalog response.
type pagedProducts struct {
	Total int64            `json:"total"`
	Data  []models.Product `json:"data"`
}

// CatalogService builds filter/sort/paginate queries over seller_products.
type CatalogService struct {
	products repository.ProductRepository
	cache    *cache.Cache
}

func NewCatalogService(products repository.ProductRepository, c *cache.Cache) *CatalogService {
	return &CatalogService{products: products, cache: c}
}

// Search matches the text case-insensitively against title, category, or
// brand, optionally scoped to one seller.
func (s *CatalogService) Search(ctx context.Context, title, sellerID string, limit int) ([]models.Product, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}
	opts := options.Find().SetLimit(int64(limit))
	products, err := s.products.Find(ctx, searchFilter(title, sellerID), opts)
	if err != nil {
		return nil, apperrors.Unavailable("Failed to search products", err)
	}
	return products, nil
}

// BrowseByCategory pages the active products of a category sorted by the
// raw stored price. Pages are 1-indexed; the total is computed from the
// same predicate as the page query.
func (s *CatalogService) BrowseByCategory(ctx context.Context, category string, limit, page, sortDir int) ([]models.Product, int64, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}
	filter := categoryFilter(category)
	opts := options.Find().
		SetSort(bson.D{{Key: "price", Value: normalizeSortDir(sortDir)}}).
		SetLimit(int64(limit)).
		SetSkip(browseSkip(page, limit))

	products, err := s.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.Unavailable("Failed to fetch category products", err)
	}
	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Unavailable("Failed to count category products", err)
	}
	return products, total, nil
}

// BrowseWithComputedPrice pages the active products of a category sorted by
// the effective price (specialPrice when positive, else price). The total
// uses the same match predicate as the pipeline.
func (s *CatalogService) BrowseWithComputedPrice(ctx context.Context, category string, limit, page, sortDir int) ([]models.Product, int64, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}
	pipeline := computedPricePipeline(category, limit, browseSkip(page, limit), sortDir)

	products, err := s.products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, apperrors.Unavailable("Failed to fetch category products", err)
	}
	total, err := s.products.Count(ctx, categoryFilter(category))
	if err != nil {
		return nil, 0, apperrors.Unavailable("Failed to count category products", err)
	}
	return products, total, nil
}

// MostViewed ranks active products by views, cached briefly since the home
// page hammers it. sellerID narrows the ranking to one storefront.
func (s *CatalogService) MostViewed(ctx context.Context, sellerID string, limit, page int) ([]models.Product, int64, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}
	if page < 0 {
		page = 0
	}

	key := fmt.Sprintf("catalog:mostviewed:%s:%d:%d", sellerID, limit, page)
	var cached pagedProducts
	if s.cache.Get(ctx, key, &cached) {
		return cached.Data, cached.Total, nil
	}

	products, err := s.products.Aggregate(ctx, mostViewedPipeline(sellerID, limit, page))
	if err != nil {
		return nil, 0, apperrors.Unavailable("Failed to fetch most viewed products", err)
	}

	countFilter := bson.M{"status": models.ProductActive}
	if sellerID != "" {
		countFilter["sellerId"] = sellerID
	}
	total, err := s.products.Count(ctx, countFilter)
	if err != nil {
		return nil, 0, apperrors.Unavailable("Failed to count products", err)
	}

	s.cache.Set(ctx, key, pagedProducts{Total: total, Data: products})
	return products, total, nil
}

// SellerLatest pages one seller's products newest first.
func (s *CatalogService) SellerLatest(ctx context.Context, sellerID string, limit, page int) ([]models.Product, int64, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}
	if page < 0 {
		page = 0
	}
	filter := bson.M{"sellerId": sellerID}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(page * limit))

	products, err := s.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.Unavailable("Failed to fetch seller products", err)
	}
	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Unavailable("Failed to count seller products", err)
	}
	return products, total, nil
}

// StorefrontPreview returns the small active-product strip shown on a
// seller's storefront page.
func (s *CatalogService) StorefrontPreview(ctx context.Context, sellerID string) ([]models.Product, error) {
	opts := options.Find().SetLimit(storefrontPreview)
	products, err := s.products.Find(ctx, bson.M{"sellerId": sellerID, "status": models.ProductActive}, opts)
	if err != nil {
		return nil, apperrors.Unavailable("Failed to fetch seller products", err)
	}
	return products, nil
}

// IncrementViews bumps a product's monotonic view counter.
func (s *CatalogService) IncrementViews(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return apperrors.InvalidArgument("Invalid product id")
	}
	matched, err := s.products.IncrementViews(ctx, id)
	if err != nil {
		return apperrors.Unavailable("Failed to update product views", err)
	}
	if matched == 0 {
		return apperrors.NotFound("Product not found")
	}
	return nil
}

// browseSkip converts a 1-indexed browse page into an offset, clamping to
// the first window.
func browseSkip(page, limit int) int64 {
	if page < 1 {
		page = 1
	}
	return int64((page - 1) * limit)
}
