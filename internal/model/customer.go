package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loyalty tiers. Tier assignment is manual — points accumulate automatically
// (one point per 100 currency units spent) but never reclassify the customer.
const (
	TierBronze = "Bronze"
	TierSilver = "Silver"
	TierGold   = "Gold"
)

// Customer tracks contact details plus two monotonic accumulators that are
// only ever advanced by completed sales.
type Customer struct {
	Code           string `gorm:"primaryKey;size:20"` // CUST-001
	Name           string `gorm:"index;not null"`
	Phone          string
	Email          string
	Address        string
	LoyaltyTier    string          `gorm:"not null;default:'Bronze'"`
	LoyaltyPoints  int64           `gorm:"not null;default:0"`
	TotalPurchases decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
