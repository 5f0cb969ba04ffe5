package memory

import (
	"context"
	"sort"

	"showroom/internal/model"
	"showroom/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type customerRepo struct{ s *Store }

func NewCustomerRepository(s *Store) repository.CustomerRepository { return &customerRepo{s: s} }

func (r *customerRepo) CreateTx(_ *gorm.DB, c *model.Customer) error {
	r.s.customers[c.Code] = *c
	return nil
}

func (r *customerRepo) FindByCode(_ context.Context, code string) (*model.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.customers[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *customerRepo) List(_ context.Context) ([]model.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	customers := make([]model.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].Code < customers[j].Code })
	return customers, nil
}

func (r *customerRepo) Update(_ context.Context, c *model.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.customers[c.Code]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.customers[c.Code] = *c
	return nil
}

func (r *customerRepo) ApplySaleTx(_ *gorm.DB, code string, amount decimal.Decimal, points int64) error {
	c, ok := r.s.customers[code]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.TotalPurchases = c.TotalPurchases.Add(amount)
	c.LoyaltyPoints += points
	r.s.customers[code] = c
	return nil
}

func (r *customerRepo) NextSequence(_ context.Context, _ *gorm.DB) (int, error) {
	return r.s.nextSeq(repository.SeqCustomer), nil
}
