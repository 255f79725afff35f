package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Placed"
	StatusConfirmed      OrderStatus = "Confirmed"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// AllStatuses lists every recognized status token, in lifecycle order.
var AllStatuses = []OrderStatus{
	StatusPlaced,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// Valid reports whether s is one of the recognized status tokens.
func (s OrderStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Order struct {
	ID                    uint        `json:"id" gorm:"primaryKey"`
	UserID                *uint       `json:"user_id"`
	User                  *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID          uint        `json:"restaurant_id" gorm:"not null"`
	Restaurant            *Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Items                 []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Discount              float64     `json:"discount"`
	FinalTotal            float64     `json:"final_total"`
	OrderStatus           OrderStatus `json:"order_status" gorm:"not null;default:'Placed'"`
	EstimatedDeliveryTime *time.Time  `json:"estimated_delivery_time"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderID    uint      `json:"order_id" gorm:"not null"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null"`
	MenuItem   *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int       `json:"quantity" gorm:"not null"`
}
