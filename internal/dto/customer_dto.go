package dto

import "github.com/shopspring/decimal"

type CreateCustomerRequest struct {
	Name        string `json:"name"         validate:"required,min=2,max=120"`
	Phone       string `json:"phone"`
	Email       string `json:"email"        validate:"omitempty,email"`
	Address     string `json:"address"`
	LoyaltyTier string `json:"loyalty_tier" validate:"omitempty,oneof=Bronze Silver Gold"`
}

// UpdateCustomerRequest replaces contact fields and the manually assigned
// tier; the accumulators stay untouched.
type UpdateCustomerRequest struct {
	Name        string `json:"name"         validate:"required,min=2,max=120"`
	Phone       string `json:"phone"`
	Email       string `json:"email"        validate:"omitempty,email"`
	Address     string `json:"address"`
	LoyaltyTier string `json:"loyalty_tier" validate:"required,oneof=Bronze Silver Gold"`
}

type CustomerResponse struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	LoyaltyTier    string          `json:"loyalty_tier"`
	LoyaltyPoints  int64           `json:"loyalty_points"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
}
