package analytics

import (
	"time"

	"restaurant-orders-api/models"

	"gorm.io/gorm"
)

// SalesReport summarizes a restaurant's orders over a reporting window.
type SalesReport struct {
	TotalSales        float64   `json:"totalSales"`
	TotalOrders       int       `json:"totalOrders"`
	TotalItems        int       `json:"totalItems"`
	TotalDiscounts    float64   `json:"totalDiscounts"`
	AverageOrderValue float64   `json:"averageOrderValue"`
	PeriodRange       DateRange `json:"periodRange"`
}

// SalesReportFor aggregates the restaurant's orders whose creation time or
// estimated delivery time falls inside the period's window (inclusive).
func SalesReportFor(db *gorm.DB, restaurantID uint, period Period, now time.Time) (*SalesReport, error) {
	window, err := RangeFor(period, now)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	err = db.Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		Where("(created_at BETWEEN ? AND ?) OR (estimated_delivery_time BETWEEN ? AND ?)",
			window.Start, window.End, window.Start, window.End).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	report := &SalesReport{PeriodRange: window}
	for _, o := range orders {
		report.TotalSales += o.FinalTotal
		report.TotalOrders++
		report.TotalItems += len(o.Items)
		report.TotalDiscounts += o.Discount
	}
	// Average is defined as 0 on an empty window, never NaN.
	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalSales / float64(report.TotalOrders)
	}
	return report, nil
}

// PopularItem is one row of the popularity ranking.
type PopularItem struct {
	Name      string `json:"name"`
	TotalSold int    `json:"totalSold"`
}

// PopularItems expands every order's item list for the restaurant, joins each
// line to its menu-item name and ranks names by total quantity sold. Ties
// break lexicographically on name so the ranking is stable.
func PopularItems(db *gorm.DB, restaurantID uint, limit int) ([]PopularItem, error) {
	items := []PopularItem{}
	err := db.Table("order_items").
		Select("menu_items.name AS name, SUM(order_items.quantity) AS total_sold").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("orders.restaurant_id = ?", restaurantID).
		Group("menu_items.name").
		Order("total_sold DESC, menu_items.name ASC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}
