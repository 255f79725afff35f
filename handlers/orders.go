package handlers

import (
	"fmt"
	"net/http"
	"time"

	"restaurant-orders-api/config"
	"restaurant-orders-api/logger"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	UserID       *uint `json:"user_id"`
	RestaurantID uint  `json:"restaurant_id" binding:"required"`
	Items        []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
	Discount              float64    `json:"discount"`
	FinalTotal            float64    `json:"final_total"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time"`
}

// CreateOrder persists the caller-supplied order payload verbatim. Totals are
// trusted as submitted; see DESIGN.md.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
		})
	}

	order := models.Order{
		UserID:                req.UserID,
		RestaurantID:          req.RestaurantID,
		Items:                 items,
		Discount:              req.Discount,
		FinalTotal:            req.FinalTotal,
		OrderStatus:           models.StatusPlaced,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListOwnerOrders returns all orders across the caller's restaurants, most
// recent first, with user and restaurant references resolved.
func ListOwnerOrders(c *gin.Context) {
	owner := middleware.CurrentUser(c)

	var restaurants []models.Restaurant
	config.DB.Where("owner_id = ?", owner.ID).Find(&restaurants)
	if len(restaurants) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No restaurants found for this owner."})
		return
	}

	restaurantIDs := make([]uint, 0, len(restaurants))
	for _, r := range restaurants {
		restaurantIDs = append(restaurantIDs, r.ID)
	}

	orders := []models.Order{}
	err := config.DB.
		Preload("User").
		Preload("Restaurant").
		Preload("Items.MenuItem").
		Where("restaurant_id IN ?", restaurantIDs).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

type UpdateOrderStatusRequest struct {
	OrderStatus models.OrderStatus `json:"order_status" binding:"required"`
}

// UpdateOrderStatus sets an order's status and notifies its user. The status
// write and the notification insert share one transaction so a failure cannot
// drop the notification while keeping the new status.
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.OrderStatus.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if config.C.StrictTransitions {
		if err := statemachine.CanTransition(order.OrderStatus, req.OrderStatus); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":             "Invalid state transition",
				"current_status":    order.OrderStatus,
				"requested":         req.OrderStatus,
				"reason":            err.Error(),
				"valid_next_states": statemachine.ValidTransitionsFrom(order.OrderStatus),
			})
			return
		}
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Update("order_status", req.OrderStatus).Error; err != nil {
			return err
		}
		if order.UserID == nil {
			logger.Log.Warn("no user associated with order", zap.Uint("order_id", order.ID))
			return nil
		}
		notification := models.Notification{
			RecipientID: *order.UserID,
			Type:        string(req.OrderStatus),
			Title:       fmt.Sprintf("Your order is now %s", req.OrderStatus),
			Message:     fmt.Sprintf("Order #%d status has been updated to %q.", order.ID, req.OrderStatus),
			RelatedEntity: models.RelatedEntity{
				EntityType: "Order",
				EntityID:   order.ID,
			},
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		logger.Log.Error("failed to update order status",
			zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated and customer notified"})
}
