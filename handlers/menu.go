package handlers

import (
	"net/http"

	"restaurant-orders-api/config"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
}

// ownedRestaurant loads the restaurant only when it belongs to the caller.
func ownedRestaurant(c *gin.Context, restaurantID string) (*models.Restaurant, bool) {
	owner := middleware.CurrentUser(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND owner_id = ?", restaurantID, owner.ID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. This restaurant does not belong to you."})
		return nil, false
	}
	return &restaurant, true
}

// ListMenuItems returns all menu items for an owned restaurant
func ListMenuItems(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c, c.Param("restaurantId"))
	if !ok {
		return
	}

	var items []models.MenuItem
	if err := config.DB.Where("restaurant_id = ?", restaurant.ID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items."})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddMenuItem adds a new item to an owned restaurant's menu
func AddMenuItem(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c, c.Param("restaurantId"))
	if !ok {
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		IsAvailable:  true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item."})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem updates a menu item, verifying ownership via its restaurant
func UpdateMenuItem(c *gin.Context) {
	owner := middleware.CurrentUser(c)

	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("menuItemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found."})
		return
	}
	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND owner_id = ?", item.RestaurantID, owner.ID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. This restaurant does not belong to you."})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{
		"name": true, "description": true, "price": true,
		"category": true, "is_available": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&item).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item."})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem removes a menu item, verifying ownership via its restaurant
func DeleteMenuItem(c *gin.Context) {
	owner := middleware.CurrentUser(c)

	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("menuItemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found."})
		return
	}
	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND owner_id = ?", item.RestaurantID, owner.ID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. This restaurant does not belong to you."})
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully."})
}
