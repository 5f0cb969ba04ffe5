package service

import (
	"context"
	"fmt"
	"time"

	"showroom/internal/dto"
	"showroom/internal/model"
	"showroom/internal/repository"
	"showroom/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// loyaltyDivisor: one loyalty point per 100 currency units of a sale.
const loyaltyDivisor = 100

// SalesService owns the sales ledger. RecordSale is the widest composite
// operation in the system — it touches the ledger, the catalog, the customer
// and the stock log — so every write happens inside one transaction:
//
//  1. Resolve customer and every product, validate quantities (pre-flight,
//     outside the transaction — a validation failure touches nothing).
//  2. BEGIN: mint invoice number, create sale + items, decrement stock,
//     append one stock movement per item, advance customer accumulators.
//  3. COMMIT.
//  4. (async) best-effort receipt email when the customer has an address.
type SalesService interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error)
	Get(ctx context.Context, invoiceNo string) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
	UpdatePaymentStatus(ctx context.Context, invoiceNo, status string) error
}

type salesService struct {
	sales     repository.SaleRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	movements repository.StockMovementRepository
	tx        repository.Transactor
	strict    bool
	dispatch  *worker.Dispatcher // nil when receipt emails are disabled
}

func NewSalesService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	movements repository.StockMovementRepository,
	tx repository.Transactor,
	strict bool,
	dispatch *worker.Dispatcher,
) SalesService {
	return &salesService{
		sales:     sales,
		products:  products,
		customers: customers,
		movements: movements,
		tx:        tx,
		strict:    strict,
		dispatch:  dispatch,
	}
}

func (s *salesService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, invalidInput("sale needs at least one item")
	}

	customer, err := s.customers.FindByCode(ctx, req.CustomerCode)
	if err != nil {
		return nil, notFound("customer", req.CustomerCode)
	}

	// Resolve products and snapshot prices — pre-flight, outside the tx.
	type resolvedItem struct {
		code     string
		name     string
		price    decimal.Decimal // selling price at sale time
		purchase decimal.Decimal
		quantity int
	}

	resolved := make([]resolvedItem, 0, len(req.Items))
	requested := make(map[string]int) // total quantity per product across all item rows
	totalSale := decimal.Zero
	totalProfit := decimal.Zero

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, invalidInput("quantity for %s must be positive, got %d", item.ProductCode, item.Quantity)
		}
		p, err := s.products.FindByCode(ctx, item.ProductCode)
		if err != nil {
			return nil, notFound("product", item.ProductCode)
		}
		requested[p.Code] += item.Quantity
		if s.strict && requested[p.Code] > p.CurrentStock {
			return nil, fmt.Errorf("product %s has %d in stock, requested %d: %w",
				p.Code, p.CurrentStock, requested[p.Code], ErrInsufficientStock)
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		totalSale = totalSale.Add(p.SellingPrice.Mul(qty))
		totalProfit = totalProfit.Add(p.SellingPrice.Sub(p.PurchasePrice).Mul(qty))
		resolved = append(resolved, resolvedItem{
			code:     p.Code,
			name:     p.Name,
			price:    p.SellingPrice,
			purchase: p.PurchasePrice,
			quantity: item.Quantity,
		})
	}

	paymentStatus := model.StatusPaid
	if req.PaymentMethod == model.PaymentDue {
		paymentStatus = model.StatusDue
	}
	points := totalSale.Div(decimal.NewFromInt(loyaltyDivisor)).Floor().IntPart()

	var sale model.Sale
	txErr := s.tx.Atomically(ctx, func(tx *gorm.DB) error {
		n, err := s.sales.NextSequence(ctx, tx)
		if err != nil {
			return err
		}

		sale = model.Sale{
			InvoiceNo:     fmt.Sprintf("INV-%04d", n),
			CustomerCode:  customer.Code,
			TotalSale:     totalSale,
			TotalProfit:   totalProfit,
			PaymentMethod: req.PaymentMethod,
			PaymentStatus: paymentStatus,
			CreatedAt:     time.Now(),
		}
		for _, r := range resolved {
			qty := decimal.NewFromInt(int64(r.quantity))
			sale.Items = append(sale.Items, model.SaleItem{
				ID:          uuid.New(),
				InvoiceNo:   sale.InvoiceNo,
				ProductCode: r.code,
				ProductName: r.name,
				Quantity:    r.quantity,
				UnitPrice:   r.price,
				Total:       r.price.Mul(qty),
			})
		}
		if err := s.sales.CreateTx(tx, &sale); err != nil {
			return err
		}

		// Decrement stock and log one movement per distinct item.
		for _, r := range resolved {
			before, err := s.products.FindByCodeTx(tx, r.code)
			if err != nil {
				return err
			}
			if err := s.products.UpdateStockTx(tx, r.code, -r.quantity); err != nil {
				return err
			}
			if err := s.movements.CreateTx(tx, &model.StockMovement{
				ProductCode:  r.code,
				Type:         model.MovementSale,
				Quantity:     r.quantity,
				UpdatedStock: before.CurrentStock - r.quantity,
			}); err != nil {
				return err
			}
		}

		return s.customers.ApplySaleTx(tx, customer.Code, totalSale, points)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Receipt email — fire & forget, never blocks or fails the sale.
	if s.dispatch != nil && customer.Email != "" {
		if err := s.dispatch.EnqueueReceiptEmail(ctx, worker.ReceiptEmailPayload{
			InvoiceNo: sale.InvoiceNo,
			To:        customer.Email,
		}); err != nil {
			log.Warn().Err(err).Str("invoice", sale.InvoiceNo).Msg("receipt email not enqueued")
		}
	}

	return saleToResponse(&sale), nil
}

func (s *salesService) Get(ctx context.Context, invoiceNo string) (*dto.SaleResponse, error) {
	sale, err := s.sales.FindByInvoice(ctx, invoiceNo)
	if err != nil {
		return nil, notFound("invoice", invoiceNo)
	}
	return saleToResponse(sale), nil
}

func (s *salesService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	sales, total, err := s.sales.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		data = append(data, *saleToResponse(&sales[i]))
	}
	return &dto.SaleListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// UpdatePaymentStatus overwrites the status. Calling it twice with the same
// status is a no-op the second time.
func (s *salesService) UpdatePaymentStatus(ctx context.Context, invoiceNo, status string) error {
	if status != model.StatusPaid && status != model.StatusDue {
		return invalidInput("unknown payment status %q", status)
	}
	if err := s.sales.UpdatePaymentStatus(ctx, invoiceNo, status); err != nil {
		return notFound("invoice", invoiceNo)
	}
	return nil
}

func saleToResponse(sale *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, dto.SaleItemResponse{
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	return &dto.SaleResponse{
		InvoiceNo:     sale.InvoiceNo,
		Date:          sale.CreatedAt.Format(time.RFC3339),
		CustomerCode:  sale.CustomerCode,
		Items:         items,
		TotalSale:     sale.TotalSale,
		TotalProfit:   sale.TotalProfit,
		PaymentMethod: sale.PaymentMethod,
		PaymentStatus: sale.PaymentStatus,
	}
}
