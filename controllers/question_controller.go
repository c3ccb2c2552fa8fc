package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/database"
	"github.com/sheikh-riyadh/captake-server/middleware"
	"github.com/sheikh-riyadh/captake-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetProductQuestions returns one public page of a product's Q&A threads,
// newest first.
func GetProductQuestions(c *gin.Context) {
	productID := c.Query("productId")
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}

	filter := bson.M{"question.productInfo.productId": productID}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(10).
		SetSkip(int64((page - 1) * 10))

	ctx := c.Request.Context()
	cursor, err := database.DB.Collection("product_questions").Find(ctx, filter, opts)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to fetch questions", err))
		return
	}
	defer cursor.Close(ctx)

	questions := []models.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		respondError(c, apperrors.Unavailable("Failed to decode questions", err))
		return
	}

	total, err := database.DB.Collection("product_questions").CountDocuments(ctx, filter)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to count questions", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": questions})
}

// GetMyQuestions lists the caller's Q&A threads, most recently updated
// first.
func GetMyQuestions(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}
	if c.Query("email") != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	ctx := c.Request.Context()
	cursor, err := database.DB.Collection("product_questions").Find(ctx,
		bson.M{"question.userInfo.userId": c.Query("userId")}, opts)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to fetch questions", err))
		return
	}
	defer cursor.Close(ctx)

	questions := []models.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		respondError(c, apperrors.Unavailable("Failed to decode questions", err))
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuestion opens a new Q&A thread on a product.
func CreateQuestion(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}

	var body models.QuestionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid question data"))
		return
	}
	if body.UserInfo.Email != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	now := time.Now()
	question := models.Question{
		Question:  body,
		Answer:    []models.QuestionAnswer{},
		CreatedAt: now,
		UpdatedAt: now,
		Date:      models.DayOfMonth(now),
	}

	result, err := database.DB.Collection("product_questions").InsertOne(c.Request.Context(), question)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to create question", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"_id": result.InsertedID})
}

type updateQuestionRequest struct {
	ID   string              `json:"_id" binding:"required"`
	Data models.QuestionBody `json:"data" binding:"required"`
}

// UpdateQuestion rewrites the caller's own question on a thread.
func UpdateQuestion(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}

	var req updateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid question data"))
		return
	}
	if req.Data.UserInfo.Email != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid question id"))
		return
	}

	result, err := database.DB.Collection("product_questions").UpdateOne(c.Request.Context(),
		bson.M{"_id": id, "question.userInfo.userId": req.Data.UserInfo.UserID},
		bson.M{"$set": bson.M{"question": req.Data, "updatedAt": time.Now()}},
	)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to update question", err))
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, apperrors.NotFound("Question not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
