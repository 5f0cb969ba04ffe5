package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment methods accepted at the counter. A sale on Due starts with
// PaymentStatus "Due"; every other method starts "Paid".
const (
	PaymentCash  = "Cash"
	PaymentBkash = "Bkash"
	PaymentCard  = "Card"
	PaymentDue   = "Due"
)

const (
	StatusPaid = "Paid"
	StatusDue  = "Due"
)

// Sale is one ledger entry, identified by its invoice number (INV-0001).
// Totals are computed once at creation and never recomputed; only
// PaymentStatus is mutable afterwards.
type Sale struct {
	InvoiceNo     string `gorm:"primaryKey;size:20"`
	CustomerCode  string `gorm:"size:20;index;not null"`
	TotalSale     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TotalProfit   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PaymentMethod string          `gorm:"size:10;not null"`
	PaymentStatus string          `gorm:"size:10;not null"` // Paid | Due
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []SaleItem `gorm:"foreignKey:InvoiceNo;references:InvoiceNo"`
}

// SaleItem snapshots the product's name and selling price at sale time, so
// later catalog edits or deletes never rewrite history.
type SaleItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceNo   string    `gorm:"size:20;index;not null"`
	ProductCode string    `gorm:"size:20;not null"`
	ProductName string    `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}
