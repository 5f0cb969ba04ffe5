package dto

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type MovementFilter struct {
	ProductCode string `form:"product_code"`
	Type        string `form:"type"` // Purchase | Sale
	Page        int    `form:"page,default=1"    validate:"min=1"`
	Limit       int    `form:"limit,default=100" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type StockMovementResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Type         string `json:"type"`
	ProductCode  string `json:"product_code"`
	Quantity     int    `json:"quantity"`
	UpdatedStock int    `json:"updated_stock"`
}

type StockMovementListResponse struct {
	Data  []StockMovementResponse `json:"data"`
	Total int64                   `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
}

type LowStockEntry struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
}
