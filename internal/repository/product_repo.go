package repository

import (
	"context"

	"showroom/internal/dto"
	"showroom/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for the catalog.
// Services depend on this interface, not on a concrete backend, so the same
// service code runs against postgres and the in-memory store.
//
// Methods with a Tx suffix must be called inside Transactor.Atomically and
// receive its tx argument (nil on the memory backend).
type ProductRepository interface {
	CreateTx(tx *gorm.DB, p *model.Product) error
	FindByCode(ctx context.Context, code string) (*model.Product, error)
	FindByCodeTx(tx *gorm.DB, code string) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, code string) error

	// UpdateStockTx adds delta (negative for sales) to current_stock.
	UpdateStockTx(tx *gorm.DB, code string, delta int) error

	// NextSequence mints the next product number; never reused after deletes.
	NextSequence(ctx context.Context, tx *gorm.DB) (int, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) CreateTx(tx *gorm.DB, p *model.Product) error {
	return tx.Create(p).Error
}

func (r *productRepo) FindByCode(ctx context.Context, code string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByCodeTx(tx *gorm.DB, code string) (*model.Product, error) {
	var p model.Product
	err := tx.Where("code = ?", code).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{})
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.SupplierCode != "" {
		q = q.Where("supplier_code = ?", filter.SupplierCode)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("code ASC").Limit(filter.Limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *productRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("code ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).Where("code = ?", code).Delete(&model.Product{}).Error
}

func (r *productRepo) UpdateStockTx(tx *gorm.DB, code string, delta int) error {
	return tx.Model(&model.Product{}).Where("code = ?", code).
		Update("current_stock", gorm.Expr("current_stock + ?", delta)).Error
}

func (r *productRepo) NextSequence(_ context.Context, tx *gorm.DB) (int, error) {
	return nextSequence(tx, SeqProduct)
}
