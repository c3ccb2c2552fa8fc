package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/middleware"
	"github.com/sheikh-riyadh/captake-server/models"
	"github.com/sheikh-riyadh/captake-server/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewController serves review reads and creation.
type ReviewController struct {
	reviews repository.ReviewRepository
}

func NewReviewController(reviews repository.ReviewRepository) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// GetMyReviews returns one page of the caller's reviews.
func (rc *ReviewController) GetMyReviews(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}
	if c.Query("email") != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	userID := c.Query("userId")
	page := queryInt(c, "page", 1)
	search := c.Query("search")

	reviews, total, err := rc.reviews.FindByUserID(c.Request.Context(), userID, search, page)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to fetch reviews", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": reviews})
}

// GetReviewByOrderID returns the caller's review for one order, or null
// when the order has not been reviewed yet.
func (rc *ReviewController) GetReviewByOrderID(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}
	if c.Query("email") != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	orderID, err := strconv.ParseInt(c.Query("orderId"), 10, 64)
	if err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid order id"))
		return
	}

	review, err := rc.reviews.FindOne(c.Request.Context(), bson.M{"orderId": orderID})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, apperrors.Unavailable("Failed to fetch review", err))
		return
	}
	c.JSON(http.StatusOK, review)
}

// GetReviewsByProductID returns one public page of a product's reviews,
// newest first.
func (rc *ReviewController) GetReviewsByProductID(c *gin.Context) {
	productID := c.Query("productId")
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}

	filter := bson.M{"productInfo.productId": productID}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(10).
		SetSkip(int64((page - 1) * 10))

	reviews, err := rc.reviews.Find(c.Request.Context(), filter, opts)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to fetch reviews", err))
		return
	}
	total, err := rc.reviews.Count(c.Request.Context(), filter)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to count reviews", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": reviews})
}

// GetSellerReviews returns one public page of a seller's reviews, sorted
// on createdAt in the requested direction.
func (rc *ReviewController) GetSellerReviews(c *gin.Context) {
	sellerID := c.Query("sellerId")
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	sortDir := queryInt(c, "sortedValue", -1)
	if sortDir >= 0 {
		sortDir = 1
	} else {
		sortDir = -1
	}

	filter := bson.M{"sellerId": sellerID}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: sortDir}}).
		SetLimit(10).
		SetSkip(int64((page - 1) * 10))

	reviews, err := rc.reviews.Find(c.Request.Context(), filter, opts)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to fetch reviews", err))
		return
	}
	total, err := rc.reviews.Count(c.Request.Context(), filter)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to count reviews", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": reviews})
}

// CreateReview stores one review for a completed order.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}

	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid review data"))
		return
	}
	if review.UserInfo.Email != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	review.CreatedAt = time.Now()
	if err := rc.reviews.Insert(c.Request.Context(), review); err != nil {
		respondError(c, apperrors.Unavailable("Failed to create review", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "success"})
}
