package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/database"
	"github.com/sheikh-riyadh/captake-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAllSellers pages the active sellers with their public fields only.
func GetAllSellers(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
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

	filter := bson.M{"status": "active"}
	opts := options.Find().
		SetProjection(bson.M{"logo": 1, "businessName": 1}).
		SetSort(bson.D{{Key: "createdAt", Value: sortDir}}).
		SetLimit(int64(limit)).
		SetSkip(int64((page - 1) * 10))

	ctx := c.Request.Context()
	cursor, err := database.DB.Collection("seller").Find(ctx, filter, opts)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to fetch sellers", err))
		return
	}
	defer cursor.Close(ctx)

	sellers := []models.Seller{}
	if err := cursor.All(ctx, &sellers); err != nil {
		respondError(c, apperrors.Unavailable("Failed to decode sellers", err))
		return
	}

	total, err := database.DB.Collection("seller").CountDocuments(ctx, filter)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to count sellers", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": sellers})
}

// GetSellerBanners lists all banners for one seller.
func GetSellerBanners(c *gin.Context) {
	ctx := c.Request.Context()
	cursor, err := database.DB.Collection("seller_banner").Find(ctx, bson.M{"sellerId": c.Param("sellerId")})
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to fetch banners", err))
		return
	}
	defer cursor.Close(ctx)

	banners := []models.SellerBanner{}
	if err := cursor.All(ctx, &banners); err != nil {
		respondError(c, apperrors.Unavailable("Failed to decode banners", err))
		return
	}
	c.JSON(http.StatusOK, banners)
}

// GetSellerStorefront returns the default banner plus the store's public
// info in one response.
func GetSellerStorefront(c *gin.Context) {
	sellerID := c.Param("sellerId")
	ctx := c.Request.Context()

	var banner *models.SellerBanner
	var b models.SellerBanner
	err := database.DB.Collection("seller_banner").FindOne(ctx, bson.M{"sellerId": sellerID, "default": true}).Decode(&b)
	if err == nil {
		banner = &b
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		respondError(c, apperrors.Unavailable("Failed to fetch banner", err))
		return
	}

	id, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid seller id"))
		return
	}

	var store *models.Seller
	var s models.Seller
	opts := options.FindOne().SetProjection(bson.M{"businessName": 1, "logo": 1})
	err = database.DB.Collection("seller").FindOne(ctx, bson.M{"_id": id}, opts).Decode(&s)
	if err == nil {
		store = &s
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		respondError(c, apperrors.Unavailable("Failed to fetch seller", err))
		return
	}

	c.JSON(http.StatusOK, models.SellerStorefront{Banner: banner, Store: store})
}

// GetReturnPolicy returns one seller's return policy, or null when unset.
func GetReturnPolicy(c *gin.Context) {
	var policy models.ReturnPolicy
	err := database.DB.Collection("seller_return_policy").FindOne(c.Request.Context(),
		bson.M{"sellerId": c.Param("sellerId")}).Decode(&policy)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, apperrors.Unavailable("Failed to fetch return policy", err))
		return
	}
	c.JSON(http.StatusOK, policy)
}

// GetSellerBrands lists the brands one seller carries.
func GetSellerBrands(c *gin.Context) {
	ctx := c.Request.Context()
	cursor, err := database.DB.Collection("seller_brands").Find(ctx, bson.M{"sellerId": c.Param("sellerId")})
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to fetch brands", err))
		return
	}
	defer cursor.Close(ctx)

	brands := []models.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		respondError(c, apperrors.Unavailable("Failed to decode brands", err))
		return
	}
	c.JSON(http.StatusOK, brands)
}

// GetSellerAnnouncement returns one seller's storefront announcement, or
// null when unset.
func GetSellerAnnouncement(c *gin.Context) {
	var announcement models.Announcement
	err := database.DB.Collection("seller_announcement").FindOne(c.Request.Context(),
		bson.M{"sellerId": c.Param("sellerId")}).Decode(&announcement)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, apperrors.Unavailable("Failed to fetch announcement", err))
		return
	}
	c.JSON(http.StatusOK, announcement)
}
