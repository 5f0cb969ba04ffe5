package repository

import (
	"context"
	"time"

	"showroom/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	CreateTx(tx *gorm.DB, s *model.Supplier) error
	FindByCode(ctx context.Context, code string) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) error

	// AdjustDueTx adds delta to the due balance (restocks buy on credit).
	AdjustDueTx(tx *gorm.DB, code string, delta decimal.Decimal) error

	// RecordPaymentTx lowers the due balance and stamps the payment date.
	RecordPaymentTx(tx *gorm.DB, code string, amount decimal.Decimal, at time.Time) error

	NextSequence(ctx context.Context, tx *gorm.DB) (int, error)
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) CreateTx(tx *gorm.DB, s *model.Supplier) error {
	return tx.Create(s).Error
}

func (r *supplierRepo) FindByCode(ctx context.Context, code string) (*model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *supplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).Order("code ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *supplierRepo) AdjustDueTx(tx *gorm.DB, code string, delta decimal.Decimal) error {
	return tx.Model(&model.Supplier{}).Where("code = ?", code).
		Update("due_balance", gorm.Expr("due_balance + ?", delta)).Error
}

func (r *supplierRepo) RecordPaymentTx(tx *gorm.DB, code string, amount decimal.Decimal, at time.Time) error {
	return tx.Model(&model.Supplier{}).Where("code = ?", code).
		Updates(map[string]interface{}{
			"due_balance":       gorm.Expr("due_balance - ?", amount),
			"last_payment_date": at,
		}).Error
}

func (r *supplierRepo) NextSequence(_ context.Context, tx *gorm.DB) (int, error) {
	return nextSequence(tx, SeqSupplier)
}
