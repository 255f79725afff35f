package handlers

import (
	"bytes"
	"net/http"
	"time"

	"restaurant-orders-api/analytics"
	"restaurant-orders-api/config"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

type SalesReportRequest struct {
	RestaurantID uint             `json:"restaurantId" binding:"required"`
	Period       analytics.Period `json:"period" binding:"required"`
}

type PopularItemsRequest struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
}

type ExportDataRequest struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Format       string `json:"format" binding:"required"`
}

// analyticsRestaurant loads the restaurant only when the caller owns it.
func analyticsRestaurant(c *gin.Context, restaurantID uint) (*models.Restaurant, bool) {
	owner := middleware.CurrentUser(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND owner_id = ?", restaurantID, owner.ID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found or unauthorized access"})
		return nil, false
	}
	return &restaurant, true
}

// SalesReport aggregates sales metrics for an owned restaurant over a
// day/week/month window.
func SalesReport(c *gin.Context) {
	var req SalesReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := analyticsRestaurant(c, req.RestaurantID); !ok {
		return
	}

	report, err := analytics.SalesReportFor(config.DB, req.RestaurantID, req.Period, time.Now())
	if err == analytics.ErrInvalidPeriod {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate sales report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// PopularItems returns the restaurant's ten best-selling menu items.
func PopularItems(c *gin.Context) {
	var req PopularItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := analyticsRestaurant(c, req.RestaurantID); !ok {
		return
	}

	items, err := analytics.PopularItems(config.DB, req.RestaurantID, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch popular items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ExportData serves the restaurant's full order list as CSV or JSON.
func ExportData(c *gin.Context) {
	var req ExportDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Format != "csv" && req.Format != "json" {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Invalid format. Must be "csv" or "json".`})
		return
	}
	if _, ok := analyticsRestaurant(c, req.RestaurantID); !ok {
		return
	}

	orders, err := analytics.OrdersForExport(config.DB, req.RestaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	if req.Format == "csv" {
		var buf bytes.Buffer
		if err := analytics.WriteCSV(&buf, orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="sales_report.csv"`)
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
		return
	}
	c.JSON(http.StatusOK, orders)
}
