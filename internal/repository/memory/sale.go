package memory

import (
	"context"
	"slices"

	"showroom/internal/dto"
	"showroom/internal/model"
	"showroom/internal/repository"

	"gorm.io/gorm"
)

type saleRepo struct{ s *Store }

func NewSaleRepository(s *Store) repository.SaleRepository { return &saleRepo{s: s} }

func (r *saleRepo) CreateTx(_ *gorm.DB, sale *model.Sale) error {
	stored := *sale
	stored.Items = slices.Clone(sale.Items)
	r.s.sales[sale.InvoiceNo] = stored
	r.s.saleOrder = append(r.s.saleOrder, sale.InvoiceNo)
	return nil
}

func (r *saleRepo) FindByInvoice(_ context.Context, invoiceNo string) (*model.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sale, ok := r.s.sales[invoiceNo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	sale.Items = slices.Clone(sale.Items)
	return &sale, nil
}

func (r *saleRepo) List(_ context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	// Newest first, matching the ledger view.
	matched := make([]model.Sale, 0, len(r.s.saleOrder))
	for i := len(r.s.saleOrder) - 1; i >= 0; i-- {
		sale := r.s.sales[r.s.saleOrder[i]]
		if filter.CustomerCode != "" && sale.CustomerCode != filter.CustomerCode {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && sale.PaymentStatus != filter.Status {
			continue
		}
		sale.Items = slices.Clone(sale.Items)
		matched = append(matched, sale)
	}

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

func (r *saleRepo) ListAll(_ context.Context) ([]model.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sales := make([]model.Sale, 0, len(r.s.saleOrder))
	for _, inv := range r.s.saleOrder {
		sale := r.s.sales[inv]
		sale.Items = slices.Clone(sale.Items)
		sales = append(sales, sale)
	}
	return sales, nil
}

func (r *saleRepo) UpdatePaymentStatus(_ context.Context, invoiceNo, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sale, ok := r.s.sales[invoiceNo]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	sale.PaymentStatus = status
	r.s.sales[invoiceNo] = sale
	return nil
}

func (r *saleRepo) NextSequence(_ context.Context, _ *gorm.DB) (int, error) {
	return r.s.nextSeq(repository.SeqInvoice), nil
}
