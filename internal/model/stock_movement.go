package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MovementPurchase = "Purchase"
	MovementSale     = "Sale"
)

// StockMovement is an append-only log entry: one per restock, one per
// distinct item of a sale, and one for a product's opening stock. Quantity is
// the magnitude — the direction is implied by Type. UpdatedStock snapshots
// the product's stock right after the movement applied.
//
// IDs are UUIDs rather than a counter derived from log length, so two
// movements appended in the same instant can never collide.
type StockMovement struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductCode  string    `gorm:"size:20;index;not null"`
	Type         string    `gorm:"size:10;not null"` // Purchase | Sale
	Quantity     int       `gorm:"not null"`
	UpdatedStock int       `gorm:"not null"`
	CreatedAt    time.Time
}
