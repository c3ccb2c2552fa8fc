package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/middleware"
	"github.com/sheikh-riyadh/captake-server/models"
	"github.com/sheikh-riyadh/captake-server/services"
)

// OrderController handles checkout batches, lifecycle updates, and order
// listings for the authenticated buyer.
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder accepts a checkout batch: a JSON array of line items all
// belonging to the caller.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}

	var items []models.OrderLineItem
	if err := c.ShouldBindJSON(&items); err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid order data"))
		return
	}

	result, err := oc.orders.CreateBatch(c.Request.Context(), caller, items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

type updateOrderRequest struct {
	ID   string `json:"_id" binding:"required"`
	Data struct {
		Email  string `json:"email" binding:"required,email"`
		UserID string `json:"userId" binding:"required"`
		Status string `json:"status" binding:"required,orderstatus"`
	} `json:"data" binding:"required"`
}

// UpdateOrder applies one guarded status transition to an order line item.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument("Invalid order update"))
		return
	}
	if req.Data.Email != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	item, err := oc.orders.UpdateStatus(c.Request.Context(), caller, req.ID, req.Data.UserID, models.OrderStatus(req.Data.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetOrders returns one page of the caller's order items with an optional
// free-text search.
func (oc *OrderController) GetOrders(c *gin.Context) {
	caller, err := middleware.CallerIdentity(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return
	}

	email := c.Query("email")
	userID := c.Query("userId")
	if email != caller.Email {
		respondError(c, apperrors.Forbidden("Forbidden access"))
		return
	}

	page := queryInt(c, "page", 1)
	search := c.Query("search")

	items, total, err := oc.orders.ListOrders(c.Request.Context(), userID, search, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": items})
}

// queryInt parses an integer query parameter, falling back to def on
// absent or malformed values.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
