package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/database"
	"github.com/sheikh-riyadh/captake-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetCategories returns the newest browse categories, capped at the home
// page grid size.
func GetCategories(c *gin.Context) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(16)

	ctx := c.Request.Context()
	cursor, err := database.DB.Collection("category").Find(ctx, bson.M{}, opts)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to fetch categories", err))
		return
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		respondError(c, apperrors.Unavailable("Failed to decode categories", err))
		return
	}
	c.JSON(http.StatusOK, categories)
}
