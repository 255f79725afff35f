package models

import "time"

// RelatedEntity points a notification at the record that triggered it.
type RelatedEntity struct {
	EntityType string `json:"entity_type"`
	EntityID   uint   `json:"entity_id"`
}

// Notification is an append-only record addressed to a user. Created as a
// side effect of an order-status change; no read surface is exposed.
type Notification struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	RecipientID   uint          `json:"recipient_id" gorm:"not null"`
	Recipient     *User         `json:"recipient,omitempty" gorm:"foreignKey:RecipientID"`
	Type          string        `json:"type"`
	Title         string        `json:"title"`
	Message       string        `json:"message"`
	RelatedEntity RelatedEntity `json:"related_entity" gorm:"embedded;embeddedPrefix:related_"`
	CreatedAt     time.Time     `json:"created_at"`
}
