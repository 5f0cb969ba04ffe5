package service

import (
	"context"
	"errors"
	"fmt"

	"showroom/internal/dto"
	"showroom/internal/model"
	"showroom/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService manages products. Create and Restock are composite: they
// also write the stock ledger, and Restock additionally books the cost on
// the supplier's due balance, so both run through the Transactor.
type CatalogService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, code string) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, code string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, code string) error
	Restock(ctx context.Context, code string, quantity int) (*dto.ProductResponse, error)
}

type catalogService struct {
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	movements repository.StockMovementRepository
	tx        repository.Transactor
}

func NewCatalogService(
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	movements repository.StockMovementRepository,
	tx repository.Transactor,
) CatalogService {
	return &catalogService{products: products, suppliers: suppliers, movements: movements, tx: tx}
}

func (s *catalogService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := s.checkSupplierRef(ctx, req.SupplierCode); err != nil {
		return nil, err
	}

	var product model.Product
	err := s.tx.Atomically(ctx, func(tx *gorm.DB) error {
		n, err := s.products.NextSequence(ctx, tx)
		if err != nil {
			return err
		}
		product = model.Product{
			Code:          fmt.Sprintf("PROD-%03d", n),
			Name:          req.Name,
			Category:      req.Category,
			Size:          req.Size,
			Color:         req.Color,
			SupplierCode:  req.SupplierCode,
			PurchasePrice: req.PurchasePrice,
			SellingPrice:  req.SellingPrice,
			OpeningStock:  req.OpeningStock,
			CurrentStock:  req.OpeningStock,
		}
		if err := s.products.CreateTx(tx, &product); err != nil {
			return err
		}
		// Opening stock enters the ledger as a purchase.
		return s.movements.CreateTx(tx, &model.StockMovement{
			ProductCode:  product.Code,
			Type:         model.MovementPurchase,
			Quantity:     req.OpeningStock,
			UpdatedStock: req.OpeningStock,
		})
	})
	if err != nil {
		return nil, err
	}
	return productToResponse(&product), nil
}

func (s *catalogService) Get(ctx context.Context, code string) (*dto.ProductResponse, error) {
	product, err := s.products.FindByCode(ctx, code)
	if err != nil {
		return nil, notFound("product", code)
	}
	return productToResponse(product), nil
}

func (s *catalogService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	products, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		data = append(data, *productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Update is a full replace of the descriptive fields. Opening stock is
// immutable and current stock only moves through restocks and sales.
func (s *catalogService) Update(ctx context.Context, code string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.products.FindByCode(ctx, code)
	if err != nil {
		return nil, notFound("product", code)
	}
	if err := s.checkSupplierRef(ctx, req.SupplierCode); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Category = req.Category
	product.Size = req.Size
	product.Color = req.Color
	product.SupplierCode = req.SupplierCode
	product.PurchasePrice = req.PurchasePrice
	product.SellingPrice = req.SellingPrice

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

// Delete removes the product. Past sales and stock movements keep their
// references; readers tolerate the orphan.
func (s *catalogService) Delete(ctx context.Context, code string) error {
	if _, err := s.products.FindByCode(ctx, code); err != nil {
		return notFound("product", code)
	}
	return s.products.Delete(ctx, code)
}

func (s *catalogService) Restock(ctx context.Context, code string, quantity int) (*dto.ProductResponse, error) {
	if quantity <= 0 {
		return nil, invalidInput("restock quantity must be positive, got %d", quantity)
	}

	var product model.Product
	err := s.tx.Atomically(ctx, func(tx *gorm.DB) error {
		p, err := s.products.FindByCodeTx(tx, code)
		if err != nil {
			return notFound("product", code)
		}
		if err := s.products.UpdateStockTx(tx, code, quantity); err != nil {
			return err
		}
		newStock := p.CurrentStock + quantity
		if err := s.movements.CreateTx(tx, &model.StockMovement{
			ProductCode:  code,
			Type:         model.MovementPurchase,
			Quantity:     quantity,
			UpdatedStock: newStock,
		}); err != nil {
			return err
		}
		// Restock is always on credit from the supplier's perspective.
		if p.SupplierCode != nil && *p.SupplierCode != "" {
			cost := p.PurchasePrice.Mul(decimal.NewFromInt(int64(quantity)))
			if err := s.suppliers.AdjustDueTx(tx, *p.SupplierCode, cost); err != nil {
				return fmt.Errorf("book restock cost on %s: %w", *p.SupplierCode, err)
			}
		}
		product = *p
		product.CurrentStock = newStock
		return nil
	})
	if err != nil {
		return nil, err
	}
	return productToResponse(&product), nil
}

func (s *catalogService) checkSupplierRef(ctx context.Context, code *string) error {
	if code == nil || *code == "" {
		return nil
	}
	if _, err := s.suppliers.FindByCode(ctx, *code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("supplier", *code)
		}
		return err
	}
	return nil
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Code:          p.Code,
		Name:          p.Name,
		Category:      p.Category,
		Size:          p.Size,
		Color:         p.Color,
		SupplierCode:  p.SupplierCode,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		OpeningStock:  p.OpeningStock,
		CurrentStock:  p.CurrentStock,
	}
}
