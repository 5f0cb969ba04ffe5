package service_test

// In-memory repository stubs shared by the service tests. They run every
// Tx method against a nil *gorm.DB, matching how the services call them
// through the stub transactor.

import (
	"context"
	"strings"
	"time"

	"showroom/internal/dto"
	"showroom/internal/model"
	"showroom/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// stubTx runs the closure directly. No rollback semantics: atomicity itself
// is covered by the memory store and postgres backends, not here.
type stubTx struct{}

func (stubTx) Atomically(_ context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

var _ repository.Transactor = stubTx{}

// ── Products ─────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[string]*model.Product
	seq      int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*model.Product)}
}

func (r *stubProductRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	r.products[p.Code] = p
	return nil
}

func (r *stubProductRepo) FindByCode(_ context.Context, code string) (*model.Product, error) {
	p, ok := r.products[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindByCodeTx(_ *gorm.DB, code string) (*model.Product, error) {
	return r.FindByCode(context.Background(), code)
}

func (r *stubProductRepo) List(_ context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range r.products {
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) ListAll(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.Code]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.products[p.Code] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, code string) error {
	delete(r.products, code)
	return nil
}

func (r *stubProductRepo) UpdateStockTx(_ *gorm.DB, code string, delta int) error {
	p, ok := r.products[code]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.CurrentStock += delta
	return nil
}

func (r *stubProductRepo) NextSequence(_ context.Context, _ *gorm.DB) (int, error) {
	r.seq++
	return r.seq, nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Customers ────────────────────────────────────────────────────────────────

type stubCustomerRepo struct {
	customers map[string]*model.Customer
	seq       int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*model.Customer)}
}

func (r *stubCustomerRepo) CreateTx(_ *gorm.DB, c *model.Customer) error {
	r.customers[c.Code] = c
	return nil
}

func (r *stubCustomerRepo) FindByCode(_ context.Context, code string) (*model.Customer, error) {
	c, ok := r.customers[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	var out []model.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	if _, ok := r.customers[c.Code]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.customers[c.Code] = c
	return nil
}

func (r *stubCustomerRepo) ApplySaleTx(_ *gorm.DB, code string, amount decimal.Decimal, points int64) error {
	c, ok := r.customers[code]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.TotalPurchases = c.TotalPurchases.Add(amount)
	c.LoyaltyPoints += points
	return nil
}

func (r *stubCustomerRepo) NextSequence(_ context.Context, _ *gorm.DB) (int, error) {
	r.seq++
	return r.seq, nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

// ── Suppliers ────────────────────────────────────────────────────────────────

type stubSupplierRepo struct {
	suppliers map[string]*model.Supplier
	seq       int
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[string]*model.Supplier)}
}

func (r *stubSupplierRepo) CreateTx(_ *gorm.DB, s *model.Supplier) error {
	r.suppliers[s.Code] = s
	return nil
}

func (r *stubSupplierRepo) FindByCode(_ context.Context, code string) (*model.Supplier, error) {
	s, ok := r.suppliers[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	var out []model.Supplier
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	if _, ok := r.suppliers[s.Code]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.suppliers[s.Code] = s
	return nil
}

func (r *stubSupplierRepo) AdjustDueTx(_ *gorm.DB, code string, delta decimal.Decimal) error {
	s, ok := r.suppliers[code]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.DueBalance = s.DueBalance.Add(delta)
	return nil
}

func (r *stubSupplierRepo) RecordPaymentTx(_ *gorm.DB, code string, amount decimal.Decimal, at time.Time) error {
	s, ok := r.suppliers[code]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.DueBalance = s.DueBalance.Sub(amount)
	s.LastPaymentDate = &at
	return nil
}

func (r *stubSupplierRepo) NextSequence(_ context.Context, _ *gorm.DB) (int, error) {
	r.seq++
	return r.seq, nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── Sales ────────────────────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales map[string]*model.Sale
	order []string
	seq   int
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[string]*model.Sale)}
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	r.sales[s.InvoiceNo] = s
	r.order = append(r.order, s.InvoiceNo)
	return nil
}

func (r *stubSaleRepo) FindByInvoice(_ context.Context, invoiceNo string) (*model.Sale, error) {
	s, ok := r.sales[invoiceNo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	out, err := r.ListAll(context.Background())
	return out, int64(len(out)), err
}

func (r *stubSaleRepo) ListAll(_ context.Context) ([]model.Sale, error) {
	out := make([]model.Sale, 0, len(r.order))
	for _, inv := range r.order {
		out = append(out, *r.sales[inv])
	}
	return out, nil
}

func (r *stubSaleRepo) UpdatePaymentStatus(_ context.Context, invoiceNo, status string) error {
	s, ok := r.sales[invoiceNo]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.PaymentStatus = status
	return nil
}

func (r *stubSaleRepo) NextSequence(_ context.Context, _ *gorm.DB) (int, error) {
	r.seq++
	return r.seq, nil
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// ── Stock movements ──────────────────────────────────────────────────────────

type stubMovementRepo struct {
	movements []model.StockMovement
}

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.movements = append(r.movements, *m)
	return nil
}

func (r *stubMovementRepo) List(_ context.Context, filter dto.MovementFilter) ([]model.StockMovement, int64, error) {
	var out []model.StockMovement
	for _, m := range r.movements {
		if filter.ProductCode != "" && m.ProductCode != filter.ProductCode {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

var _ repository.StockMovementRepository = (*stubMovementRepo)(nil)

// ── Settings ─────────────────────────────────────────────────────────────────

type stubSettingsRepo struct {
	stored *model.Settings
}

func (r *stubSettingsRepo) Get(_ context.Context) (*model.Settings, error) {
	if r.stored == nil {
		def := model.DefaultSettings()
		return &def, nil
	}
	cp := *r.stored
	return &cp, nil
}

func (r *stubSettingsRepo) Save(_ context.Context, s *model.Settings) error {
	cp := *s
	r.stored = &cp
	return nil
}

var _ repository.SettingsRepository = (*stubSettingsRepo)(nil)

// ── Seed helpers ─────────────────────────────────────────────────────────────

func seedProduct(r *stubProductRepo, code, name string, purchase, selling int64, stock int) *model.Product {
	p := &model.Product{
		Code:          code,
		Name:          name,
		Category:      "Shirt",
		Size:          "M",
		Color:         "Blue",
		PurchasePrice: decimal.NewFromInt(purchase),
		SellingPrice:  decimal.NewFromInt(selling),
		OpeningStock:  stock,
		CurrentStock:  stock,
	}
	r.products[code] = p
	return p
}

func seedCustomer(r *stubCustomerRepo, code, name string) *model.Customer {
	c := &model.Customer{
		Code:        code,
		Name:        name,
		Email:       "",
		LoyaltyTier: model.TierBronze,
	}
	r.customers[code] = c
	return c
}

func seedSupplier(r *stubSupplierRepo, code, name string, due int64) *model.Supplier {
	s := &model.Supplier{
		Code:        code,
		Name:        name,
		CompanyName: name + " Ltd.",
		DueBalance:  decimal.NewFromInt(due),
	}
	r.suppliers[code] = s
	return s
}
