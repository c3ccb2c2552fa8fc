package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/database"
	"github.com/sheikh-riyadh/captake-server/middleware"
	"github.com/sheikh-riyadh/captake-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetMyReports lists the reports the caller has filed.
func GetMyReports(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}
	if c.Query("email") != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	cursor, err := database.DB.Collection("user_report").Find(c.Request.Context(), bson.M{"from._id": c.Query("id")})
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to fetch reports", err))
		return
	}
	defer cursor.Close(c.Request.Context())

	reports := []models.Report{}
	if err := cursor.All(c.Request.Context(), &reports); err != nil {
		respondError(c, apperrors.Unavailable("Failed to decode reports", err))
		return
	}
	c.JSON(http.StatusOK, reports)
}

// CreateReport files a report against a seller.
func CreateReport(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}

	var report models.Report
	if err := c.ShouldBindJSON(&report); err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid report data"))
		return
	}
	if report.From.Email != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	report.CreatedAt = time.Now()
	result, err := database.DB.Collection("user_report").InsertOne(c.Request.Context(), report)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to create report", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"_id": result.InsertedID})
}

// GetReportedSeller fetches the seller referenced by one of the caller's
// reports.
func GetReportedSeller(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}
	if c.Query("email") != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid seller id"))
		return
	}

	var seller models.Seller
	err = database.DB.Collection("seller").FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&seller)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, apperrors.NotFound("Seller not found"))
			return
		}
		respondError(c, apperrors.Unavailable("Failed to fetch seller", err))
		return
	}
	c.JSON(http.StatusOK, seller)
}

// CreateFeedback stores a site feedback submission.
func CreateFeedback(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}

	var feedback models.Feedback
	if err := c.ShouldBindJSON(&feedback); err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid feedback data"))
		return
	}
	if feedback.User.Email != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	feedback.CreatedAt = time.Now()
	result, err := database.DB.Collection("feedback").InsertOne(c.Request.Context(), feedback)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to create feedback", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"_id": result.InsertedID})
}
