package handlers

import (
	"net/http"

	"restaurant-orders-api/config"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

type CreateRestaurantRequest struct {
	Name           string  `json:"name" binding:"required"`
	OwnerID        uint    `json:"owner_id"`
	Description    string  `json:"description"`
	Cuisine        string  `json:"cuisine"`
	Address        string  `json:"address"`
	ContactNumber  string  `json:"contact_number"`
	Email          string  `json:"email"`
	OperatingHours string  `json:"operating_hours"`
	IsActive       *bool   `json:"is_active"`
	Rating         float64 `json:"rating"`
}

// ListRestaurants returns all restaurants with their owners resolved
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := config.DB.Preload("Owner").Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// CreateRestaurant creates a restaurant. The owner defaults to the caller but
// may be set explicitly, in which case it must reference an existing user.
func CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID := req.OwnerID
	if ownerID == 0 {
		ownerID = middleware.CurrentUser(c).ID
	}
	var owner models.User
	if err := config.DB.First(&owner, ownerID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Owner not found"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	restaurant := models.Restaurant{
		OwnerID:        ownerID,
		Name:           req.Name,
		Description:    req.Description,
		Cuisine:        req.Cuisine,
		Address:        req.Address,
		ContactNumber:  req.ContactNumber,
		Email:          req.Email,
		OperatingHours: req.OperatingHours,
		IsActive:       isActive,
		Rating:         req.Rating,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// OwnerRestaurants returns all restaurants owned by the authenticated user
func OwnerRestaurants(c *gin.Context) {
	owner := middleware.CurrentUser(c)

	var restaurants []models.Restaurant
	config.DB.Where("owner_id = ?", owner.ID).Find(&restaurants)
	if len(restaurants) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No restaurants found for this owner."})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// UpdateRestaurant updates a restaurant's details (owner only)
func UpdateRestaurant(c *gin.Context) {
	owner := middleware.CurrentUser(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("restaurantId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if restaurant.OwnerID != owner.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this restaurant"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{
		"name": true, "description": true, "cuisine": true, "address": true,
		"contact_number": true, "email": true, "operating_hours": true,
		"is_active": true, "rating": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&restaurant).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// DeleteRestaurant removes a restaurant (owner only)
func DeleteRestaurant(c *gin.Context) {
	owner := middleware.CurrentUser(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("restaurantId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if restaurant.OwnerID != owner.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this restaurant"})
		return
	}

	if err := config.DB.Delete(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted successfully"})
}
