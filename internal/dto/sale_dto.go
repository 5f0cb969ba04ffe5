package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	ProductCode string `json:"product_code" validate:"required"`
	Quantity    int    `json:"quantity"     validate:"required,gt=0"`
}

type RecordSaleRequest struct {
	CustomerCode  string            `json:"customer_code"  validate:"required"`
	Items         []SaleItemRequest `json:"items"          validate:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=Cash Bkash Card Due"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Paid Due"`
}

type EmailReceiptRequest struct {
	// To overrides the customer's stored email when set.
	To string `json:"to" validate:"omitempty,email"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type SaleFilter struct {
	CustomerCode string `form:"customer_code"`
	Status       string `form:"status"` // Paid | Due | all
	Page         int    `form:"page,default=1"   validate:"min=1"`
	Limit        int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

type SaleResponse struct {
	InvoiceNo     string             `json:"invoice_no"`
	Date          string             `json:"date"`
	CustomerCode  string             `json:"customer_code"`
	Items         []SaleItemResponse `json:"items"`
	TotalSale     decimal.Decimal    `json:"total_sale"`
	TotalProfit   decimal.Decimal    `json:"total_profit"`
	PaymentMethod string             `json:"payment_method"`
	PaymentStatus string             `json:"payment_status"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
