package repository

import (
	"context"

	"showroom/internal/dto"
	"showroom/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByInvoice(ctx context.Context, invoiceNo string) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error)
	ListAll(ctx context.Context) ([]model.Sale, error)
	UpdatePaymentStatus(ctx context.Context, invoiceNo, status string) error

	// NextSequence mints the next invoice number — strictly increasing for
	// the ledger's lifetime.
	NextSequence(ctx context.Context, tx *gorm.DB) (int, error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByInvoice(ctx context.Context, invoiceNo string) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items").
		Where("invoice_no = ?", invoiceNo).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Sale{})
	if filter.CustomerCode != "" {
		q = q.Where("customer_code = ?", filter.CustomerCode)
	}
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("payment_status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items").Order("invoice_no DESC").
		Limit(filter.Limit).Offset(offset).Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) ListAll(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Preload("Items").Order("invoice_no ASC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) UpdatePaymentStatus(ctx context.Context, invoiceNo, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("invoice_no = ?", invoiceNo).Update("payment_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *saleRepo) NextSequence(_ context.Context, tx *gorm.DB) (int, error) {
	return nextSequence(tx, SeqInvoice)
}
