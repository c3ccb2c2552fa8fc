package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/database"
	"github.com/sheikh-riyadh/captake-server/middleware"
	"github.com/sheikh-riyadh/captake-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAdminBanner returns the site-wide default banner, or null when unset.
func GetAdminBanner(c *gin.Context) {
	var banner models.AdminBanner
	err := database.DB.Collection("admin_banner").FindOne(c.Request.Context(), bson.M{"default": true}).Decode(&banner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, apperrors.Unavailable("Failed to fetch banner", err))
		return
	}
	c.JSON(http.StatusOK, banner)
}

// GetAdminMessages lists broadcast messages addressed to users, newest
// first.
func GetAdminMessages(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}
	if c.Param("email") != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	ctx := c.Request.Context()
	cursor, err := database.DB.Collection("admin_message").Find(ctx, bson.M{"to": "user"}, opts)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to fetch messages", err))
		return
	}
	defer cursor.Close(ctx)

	messages := []models.AdminMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		respondError(c, apperrors.Unavailable("Failed to decode messages", err))
		return
	}
	c.JSON(http.StatusOK, messages)
}
