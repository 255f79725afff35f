package analytics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"restaurant-orders-api/models"

	"gorm.io/gorm"
)

// OrdersForExport loads every order for the restaurant with menu-item
// references resolved.
func OrdersForExport(db *gorm.DB, restaurantID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := db.Preload("Items.MenuItem").
		Where("restaurant_id = ?", restaurantID).
		Find(&orders).Error
	return orders, err
}

// WriteCSV renders orders as CSV: one row per order with its id, final total
// and a human-readable item summary.
func WriteCSV(w io.Writer, orders []models.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"orderId", "totalAmount", "items"}); err != nil {
		return err
	}
	for _, o := range orders {
		row := []string{
			strconv.FormatUint(uint64(o.ID), 10),
			strconv.FormatFloat(o.FinalTotal, 'f', -1, 64),
			itemSummary(o.Items),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// itemSummary joins order lines as `name (xqty)` separated by ", ".
func itemSummary(items []models.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name := ""
		if item.MenuItem != nil {
			name = item.MenuItem.Name
		}
		parts = append(parts, fmt.Sprintf("%s (x%d)", name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}
