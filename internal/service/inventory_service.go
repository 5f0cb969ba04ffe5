package service

import (
	"context"
	"time"

	"showroom/internal/dto"
	"showroom/internal/repository"
)

// InventoryService exposes the append-only stock movement log and the
// low-stock report the dashboard surfaces.
type InventoryService interface {
	ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.StockMovementListResponse, error)
	LowStock(ctx context.Context) ([]dto.LowStockEntry, error)
}

type inventoryService struct {
	movements repository.StockMovementRepository
	products  repository.ProductRepository
	threshold int
}

func NewInventoryService(movements repository.StockMovementRepository, products repository.ProductRepository, lowStockThreshold int) InventoryService {
	return &inventoryService{movements: movements, products: products, threshold: lowStockThreshold}
}

func (s *inventoryService) ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.StockMovementListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 100
	}
	movements, total, err := s.movements.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		data = append(data, dto.StockMovementResponse{
			ID:           m.ID.String(),
			Date:         m.CreatedAt.Format(time.RFC3339),
			Type:         m.Type,
			ProductCode:  m.ProductCode,
			Quantity:     m.Quantity,
			UpdatedStock: m.UpdatedStock,
		})
	}
	return &dto.StockMovementListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *inventoryService) LowStock(ctx context.Context) ([]dto.LowStockEntry, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockEntry, 0)
	for _, p := range products {
		if p.CurrentStock < s.threshold {
			out = append(out, dto.LowStockEntry{
				Code:         p.Code,
				Name:         p.Name,
				CurrentStock: p.CurrentStock,
			})
		}
	}
	return out, nil
}
