package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier carries a running due balance: every restock of one of its
// products is bought on credit (due += qty × purchase price) and payments
// bring the balance back down.
type Supplier struct {
	Code            string `gorm:"primaryKey;size:20"` // SUP-001
	Name            string `gorm:"not null"`
	CompanyName     string `gorm:"not null"`
	Mobile          string
	Address         string
	DueBalance      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	LastPaymentDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Products []Product `gorm:"foreignKey:SupplierCode;references:Code"`
}
