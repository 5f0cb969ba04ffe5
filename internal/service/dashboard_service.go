package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"showroom/internal/dto"
	"showroom/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	dashboardCacheKey = "dashboard:overview"
	dashboardCacheTTL = 60 * time.Second

	trendDays      = 7
	topProductsMax = 5
	recentSalesMax = 5
)

// DashboardService aggregates the overview: headline cards, the last week's
// sales trend, top sellers by revenue, recent sales and the low-stock list.
// The whole payload is cached in redis for a minute when a client is wired;
// with no redis the aggregation just runs on every request.
type DashboardService interface {
	Overview(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	sales     repository.SaleRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	inventory InventoryService
	cache     *redis.Client // nil disables caching
}

func NewDashboardService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	inventory InventoryService,
	cache *redis.Client,
) DashboardService {
	return &dashboardService{
		sales:     sales,
		products:  products,
		customers: customers,
		inventory: inventory,
		cache:     cache,
	}
}

func (s *dashboardService) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var resp dto.DashboardResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	resp, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("dashboard cache write failed")
			}
		}
	}
	return resp, nil
}

func (s *dashboardService) build(ctx context.Context) (*dto.DashboardResponse, error) {
	sales, err := s.sales.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.inventory.LowStock(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	summary := dto.DashboardSummary{
		TodaySales:     decimal.Zero,
		TotalCustomers: len(customers),
		StockValue:     decimal.Zero,
		TotalProfit:    decimal.Zero,
	}
	for _, p := range products {
		summary.StockValue = summary.StockValue.Add(
			p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.CurrentStock))))
	}

	trendByDay := make(map[string]*dto.TrendPoint, trendDays)
	trendStart := now.AddDate(0, 0, -(trendDays - 1))
	for i := 0; i < trendDays; i++ {
		day := trendStart.AddDate(0, 0, i).Format("2006-01-02")
		trendByDay[day] = &dto.TrendPoint{Date: day, Sales: decimal.Zero, Profit: decimal.Zero}
	}

	type productTally struct {
		name     string
		quantity int
		revenue  decimal.Decimal
	}
	tallies := make(map[string]*productTally)

	for i := range sales {
		sale := &sales[i]
		day := sale.CreatedAt.Format("2006-01-02")
		if day == today {
			summary.TodaySales = summary.TodaySales.Add(sale.TotalSale)
		}
		summary.TotalProfit = summary.TotalProfit.Add(sale.TotalProfit)
		if point, ok := trendByDay[day]; ok {
			point.Sales = point.Sales.Add(sale.TotalSale)
			point.Profit = point.Profit.Add(sale.TotalProfit)
		}
		for _, item := range sale.Items {
			t, ok := tallies[item.ProductCode]
			if !ok {
				t = &productTally{name: item.ProductName, revenue: decimal.Zero}
				tallies[item.ProductCode] = t
			}
			t.quantity += item.Quantity
			t.revenue = t.revenue.Add(item.Total)
		}
	}

	trend := make([]dto.TrendPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		day := trendStart.AddDate(0, 0, i).Format("2006-01-02")
		trend = append(trend, *trendByDay[day])
	}

	top := make([]dto.TopProduct, 0, len(tallies))
	for code, t := range tallies {
		top = append(top, dto.TopProduct{
			ProductCode: code,
			ProductName: t.name,
			Quantity:    t.quantity,
			Revenue:     t.revenue,
		})
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Revenue.GreaterThan(top[j].Revenue) })
	if len(top) > topProductsMax {
		top = top[:topProductsMax]
	}

	// sales come back in ledger order, so walk from the tail for the latest
	recent := make([]dto.SaleResponse, 0, recentSalesMax)
	for i := len(sales) - 1; i >= 0 && len(recent) < recentSalesMax; i-- {
		recent = append(recent, *saleToResponse(&sales[i]))
	}

	return &dto.DashboardResponse{
		Summary:     summary,
		SalesTrend:  trend,
		TopProducts: top,
		RecentSales: recent,
		LowStock:    lowStock,
	}, nil
}
