package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string          `json:"name"           validate:"required,min=2,max=120"`
	Category      string          `json:"category"       validate:"required"`
	Size          string          `json:"size"           validate:"required"`
	Color         string          `json:"color"          validate:"required"`
	SupplierCode  *string         `json:"supplier_code"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"min=0"`
	SellingPrice  decimal.Decimal `json:"selling_price"  validate:"min=0"`
	OpeningStock  int             `json:"opening_stock"  validate:"min=0"`
}

// UpdateProductRequest is a full replace — opening stock and current stock are
// deliberately absent: the first is immutable, the second only moves through
// restocks and sales.
type UpdateProductRequest struct {
	Name          string          `json:"name"           validate:"required,min=2,max=120"`
	Category      string          `json:"category"       validate:"required"`
	Size          string          `json:"size"           validate:"required"`
	Color         string          `json:"color"          validate:"required"`
	SupplierCode  *string         `json:"supplier_code"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"min=0"`
	SellingPrice  decimal.Decimal `json:"selling_price"  validate:"min=0"`
}

type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	Name         string `form:"name"`
	Category     string `form:"category"`
	SupplierCode string `form:"supplier_code"`
	Page         int    `form:"page,default=1"   validate:"min=1"`
	Limit        int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Size          string          `json:"size"`
	Color         string          `json:"color"`
	SupplierCode  *string         `json:"supplier_code"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	OpeningStock  int             `json:"opening_stock"`
	CurrentStock  int             `json:"current_stock"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
