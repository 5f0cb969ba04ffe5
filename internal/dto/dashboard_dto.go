package dto

import "github.com/shopspring/decimal"

// DashboardSummary holds the four headline cards.
type DashboardSummary struct {
	TodaySales     decimal.Decimal `json:"today_sales"`
	TotalCustomers int             `json:"total_customers"`
	StockValue     decimal.Decimal `json:"stock_value"` // Σ current stock × purchase price
	TotalProfit    decimal.Decimal `json:"total_profit"`
}

// TrendPoint is one day of the sales trend chart.
type TrendPoint struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Sales  decimal.Decimal `json:"sales"`
	Profit decimal.Decimal `json:"profit"`
}

// TopProduct is one bar of the top-sellers chart, ranked by revenue.
type TopProduct struct {
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type DashboardResponse struct {
	Summary     DashboardSummary `json:"summary"`
	SalesTrend  []TrendPoint     `json:"sales_trend"`
	TopProducts []TopProduct     `json:"top_products"`
	RecentSales []SaleResponse   `json:"recent_sales"`
	LowStock    []LowStockEntry  `json:"low_stock"`
}
