package memory

import (
	"context"
	"sort"
	"strings"

	"showroom/internal/dto"
	"showroom/internal/model"
	"showroom/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct{ s *Store }

func NewProductRepository(s *Store) repository.ProductRepository { return &productRepo{s: s} }

func (r *productRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	r.s.products[p.Code] = *p
	return nil
}

func (r *productRepo) FindByCode(_ context.Context, code string) (*model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.findLocked(code)
}

func (r *productRepo) FindByCodeTx(_ *gorm.DB, code string) (*model.Product, error) {
	return r.findLocked(code)
}

func (r *productRepo) findLocked(code string) (*model.Product, error) {
	p, ok := r.s.products[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *productRepo) List(_ context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]model.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.SupplierCode != "" && (p.SupplierCode == nil || *p.SupplierCode != filter.SupplierCode) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Code < matched[j].Code })

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

func (r *productRepo) ListAll(_ context.Context) ([]model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	products := make([]model.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Code < products[j].Code })
	return products, nil
}

func (r *productRepo) Update(_ context.Context, p *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[p.Code]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.products[p.Code] = *p
	return nil
}

func (r *productRepo) Delete(_ context.Context, code string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, code)
	return nil
}

func (r *productRepo) UpdateStockTx(_ *gorm.DB, code string, delta int) error {
	p, ok := r.s.products[code]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.CurrentStock += delta
	r.s.products[code] = p
	return nil
}

func (r *productRepo) NextSequence(_ context.Context, _ *gorm.DB) (int, error) {
	return r.s.nextSeq(repository.SeqProduct), nil
}

// paginate slices page/limit out of an already sorted result set.
func paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return items
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
