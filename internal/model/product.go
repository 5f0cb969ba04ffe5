package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Code is the business identifier shown on
// invoices and reports (PROD-001, PROD-002, …) and doubles as the primary key.
// OpeningStock is fixed at creation; CurrentStock moves with every restock
// and sale.
type Product struct {
	Code          string  `gorm:"primaryKey;size:20"`
	Name          string  `gorm:"index;not null"`
	Category      string  `gorm:"not null"` // Shirt | Pant | Saree | T-Shirt | Jacket
	Size          string  `gorm:"not null"` // S | M | L | XL | XXL | Free Size
	Color         string  `gorm:"not null"`
	SupplierCode  *string `gorm:"size:20;index"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	OpeningStock  int `gorm:"not null"`
	CurrentStock  int `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Supplier *Supplier `gorm:"foreignKey:SupplierCode;references:Code"`
}
