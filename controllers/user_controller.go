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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUser returns the caller's own account, password projected out.
func GetUser(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}
	email := c.Param("email")
	if email != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	opts := options.FindOne().SetProjection(bson.M{"password": 0})

	var user models.User
	err = database.DB.Collection("user").FindOne(c.Request.Context(), bson.M{"email": email}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, apperrors.NotFound("User not found"))
			return
		}
		respondError(c, apperrors.Unavailable("Failed to fetch user", err))
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser registers a buyer account.
func CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid user data"))
		return
	}

	now := time.Now()
	user.ID = primitive.NilObjectID
	user.Role = "user"
	user.Status = "active"
	user.CreatedAt = now
	user.Date = models.DayOfMonth(now)
	user.Month = models.MonthAbbrev(now)
	user.Year = models.YearNumber(now)

	result, err := database.DB.Collection("user").InsertOne(c.Request.Context(), user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, apperrors.Conflict("A user with this email already exists"))
			return
		}
		respondError(c, apperrors.Unavailable("Failed to create user", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"_id":    result.InsertedID,
		"email":  user.Email,
		"role":   user.Role,
		"fName":  user.FName,
		"lName":  user.LName,
		"status": user.Status,
	})
}

type updateUserRequest struct {
	ID   string `json:"_id" binding:"required"`
	Data struct {
		Email  string `json:"email" binding:"required,email"`
		FName  string `json:"fName,omitempty"`
		LName  string `json:"lName,omitempty"`
		Phone  string `json:"phone,omitempty"`
		Photo  string `json:"photo,omitempty"`
		Gender string `json:"gender,omitempty"`
	} `json:"data" binding:"required"`
}

// UpdateUser updates the caller's own profile fields.
func UpdateUser(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid user data"))
		return
	}
	if req.Data.Email != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid user id"))
		return
	}

	set := bson.M{}
	for field, value := range map[string]string{
		"fName":  req.Data.FName,
		"lName":  req.Data.LName,
		"phone":  req.Data.Phone,
		"photo":  req.Data.Photo,
		"gender": req.Data.Gender,
	} {
		if value != "" {
			set[field] = value
		}
	}
	if len(set) == 0 {
		respondError(c, apperrors.InvalidArgument("No update fields provided"))
		return
	}

	result, err := database.DB.Collection("user").UpdateOne(c.Request.Context(),
		bson.M{"_id": id, "email": caller.Email},
		bson.M{"$set": set},
	)
	if err != nil {
		respondError(c, apperrors.Unavailable("Failed to update user", err))
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, apperrors.NotFound("User not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
