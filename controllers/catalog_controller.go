package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/services"
)

// CatalogController serves the public product browse and search endpoints.
type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// SearchProducts matches a text against title, category, or brand.
func (cc *CatalogController) SearchProducts(c *gin.Context) {
	title := c.Query("title")
	sellerID := c.Query("sellerId")
	// Legacy clients send the literal string "undefined" for a missing
	// seller filter.
	if sellerID == "undefined" {
		sellerID = ""
	}
	limit := queryInt(c, "limit", 10)

	products, err := cc.catalog.Search(c.Request.Context(), title, sellerID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CategoryProducts pages a category sorted by the raw stored price.
func (cc *CatalogController) CategoryProducts(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		respondError(c, apperrors.InvalidArgument("A category is required"))
		return
	}
	limit := queryInt(c, "limit", 10)
	page := queryInt(c, "page", 1)
	sortDir := queryInt(c, "sortedValue", 1)

	products, total, err := cc.catalog.BrowseByCategory(c.Request.Context(), category, limit, page, sortDir)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": products})
}

// CategoryProductsByEffectivePrice pages a category sorted by the computed
// effective price (discounted price when positive, else list price).
func (cc *CatalogController) CategoryProductsByEffectivePrice(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		respondError(c, apperrors.InvalidArgument("A category is required"))
		return
	}
	limit := queryInt(c, "limit", 10)
	page := queryInt(c, "page", 1)
	sortDir := queryInt(c, "sortedValue", 1)

	products, total, err := cc.catalog.BrowseWithComputedPrice(c.Request.Context(), category, limit, page, sortDir)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": products})
}

// MostViewedProducts ranks all active products by view count.
func (cc *CatalogController) MostViewedProducts(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
	page := queryInt(c, "page", 0)

	products, total, err := cc.catalog.MostViewed(c.Request.Context(), "", limit, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": products})
}

// SellerMostViewedProducts ranks one seller's active products by views.
func (cc *CatalogController) SellerMostViewedProducts(c *gin.Context) {
	sellerID := c.Query("sellerId")
	limit := queryInt(c, "limit", 10)
	page := queryInt(c, "page", 0)

	products, total, err := cc.catalog.MostViewed(c.Request.Context(), sellerID, limit, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": products})
}

// SellerLatestProducts pages one seller's products newest first.
func (cc *CatalogController) SellerLatestProducts(c *gin.Context) {
	sellerID := c.Query("sellerId")
	limit := queryInt(c, "limit", 10)
	page := queryInt(c, "page", 0)

	products, total, err := cc.catalog.SellerLatest(c.Request.Context(), sellerID, limit, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": products})
}

// SellerProducts returns the short active-product strip for a storefront.
func (cc *CatalogController) SellerProducts(c *gin.Context) {
	products, err := cc.catalog.StorefrontPreview(c.Request.Context(), c.Param("sellerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

type updateViewsRequest struct {
	ID string `json:"_id" binding:"required"`
}

// UpdateViews bumps a product's view counter.
func (cc *CatalogController) UpdateViews(c *gin.Context) {
	var req updateViewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument("A product id is required"))
		return
	}
	if err := cc.catalog.IncrementViews(c.Request.Context(), req.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
