package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/database"
	"github.com/sheikh-riyadh/captake-server/middleware"
	"github.com/sheikh-riyadh/captake-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetAddresses lists the caller's saved addresses.
func GetAddresses(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}
	if c.Query("email") != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	cursor, err := database.DB.Collection("user_address").Find(c.Request.Context(), bson.M{"userId": c.Query("userId")})
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to fetch addresses", err))
		return
	}
	defer cursor.Close(c.Request.Context())

	addresses := []models.Address{}
	if err := cursor.All(c.Request.Context(), &addresses); err != nil {
		respondError(c, apperrors.Unavailable("Failed to decode addresses", err))
		return
	}
	c.JSON(http.StatusOK, addresses)
}

// CreateAddress stores one address owned by the caller.
func CreateAddress(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}

	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid address data"))
		return
	}
	if address.Email != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	result, err := database.DB.Collection("user_address").InsertOne(c.Request.Context(), address)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to create address", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"_id": result.InsertedID})
}

type updateAddressRequest struct {
	ID   string         `json:"_id" binding:"required"`
	Data models.Address `json:"data" binding:"required"`
}

// UpdateAddress replaces the fields of one owned address.
func UpdateAddress(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}

	var req updateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid address data"))
		return
	}
	if req.Data.Email != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid address id"))
		return
	}

	req.Data.ID = primitive.NilObjectID
	result, err := database.DB.Collection("user_address").UpdateOne(c.Request.Context(),
		bson.M{"_id": id, "userId": req.Data.UserID},
		bson.M{"$set": req.Data},
	)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to update address", err))
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, apperrors.NotFound("Address not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// DeleteAddress removes one owned address.
func DeleteAddress(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}
	if c.Query("email") != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Query("_id"))
	if err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid address id"))
		return
	}

	result, err := database.DB.Collection("user_address").DeleteOne(c.Request.Context(),
		bson.M{"_id": id, "userId": c.Query("userId")},
	)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to delete address", err))
		return
	}
	if result.DeletedCount == 0 {
		respondError(c, apperrors.NotFound("Address not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
