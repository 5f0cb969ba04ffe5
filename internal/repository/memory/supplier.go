package memory

import (
	"context"
	"sort"
	"time"

	"showroom/internal/model"
	"showroom/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type supplierRepo struct{ s *Store }

func NewSupplierRepository(s *Store) repository.SupplierRepository { return &supplierRepo{s: s} }

func (r *supplierRepo) CreateTx(_ *gorm.DB, sup *model.Supplier) error {
	r.s.suppliers[sup.Code] = *sup
	return nil
}

func (r *supplierRepo) FindByCode(_ context.Context, code string) (*model.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sup, ok := r.s.suppliers[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &sup, nil
}

func (r *supplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	suppliers := make([]model.Supplier, 0, len(r.s.suppliers))
	for _, sup := range r.s.suppliers {
		suppliers = append(suppliers, sup)
	}
	sort.Slice(suppliers, func(i, j int) bool { return suppliers[i].Code < suppliers[j].Code })
	return suppliers, nil
}

func (r *supplierRepo) Update(_ context.Context, sup *model.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.suppliers[sup.Code]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.suppliers[sup.Code] = *sup
	return nil
}

func (r *supplierRepo) AdjustDueTx(_ *gorm.DB, code string, delta decimal.Decimal) error {
	sup, ok := r.s.suppliers[code]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	sup.DueBalance = sup.DueBalance.Add(delta)
	r.s.suppliers[code] = sup
	return nil
}

func (r *supplierRepo) RecordPaymentTx(_ *gorm.DB, code string, amount decimal.Decimal, at time.Time) error {
	sup, ok := r.s.suppliers[code]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	sup.DueBalance = sup.DueBalance.Sub(amount)
	sup.LastPaymentDate = &at
	r.s.suppliers[code] = sup
	return nil
}

func (r *supplierRepo) NextSequence(_ context.Context, _ *gorm.DB) (int, error) {
	return r.s.nextSeq(repository.SeqSupplier), nil
}
