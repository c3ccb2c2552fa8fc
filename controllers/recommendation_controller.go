package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/services"
)

// RecommendationController serves the seller recommendation endpoint.
type RecommendationController struct {
	recommendations *services.RecommendationService
}

func NewRecommendationController(recommendations *services.RecommendationService) *RecommendationController {
	return &RecommendationController{recommendations: recommendations}
}

// SellerRatingProducts returns products recommended from well-rated
// reviews, with the popularity fallback when none qualify.
func (rc *RecommendationController) SellerRatingProducts(c *gin.Context) {
	sellerID := c.Query("sellerId")
	if sellerID == "" {
		respondError(c, apperrors.InvalidArgument("A seller id is required"))
		return
	}
	limit := queryInt(c, "limit", 10)
	page := queryInt(c, "page", 0)
	star := queryInt(c, "star", 3)

	products, total, err := rc.recommendations.Recommend(c.Request.Context(), sellerID, float64(star), limit, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": products})
}
