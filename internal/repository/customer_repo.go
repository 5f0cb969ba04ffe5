package repository

import (
	"context"

	"showroom/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	CreateTx(tx *gorm.DB, c *model.Customer) error
	FindByCode(ctx context.Context, code string) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error

	// ApplySaleTx advances the two sale accumulators in one shot.
	ApplySaleTx(tx *gorm.DB, code string, amount decimal.Decimal, points int64) error

	NextSequence(ctx context.Context, tx *gorm.DB) (int, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) CreateTx(tx *gorm.DB, c *model.Customer) error {
	return tx.Create(c).Error
}

func (r *customerRepo) FindByCode(ctx context.Context, code string) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Order("code ASC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Update(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *customerRepo) ApplySaleTx(tx *gorm.DB, code string, amount decimal.Decimal, points int64) error {
	return tx.Model(&model.Customer{}).Where("code = ?", code).
		Updates(map[string]interface{}{
			"total_purchases": gorm.Expr("total_purchases + ?", amount),
			"loyalty_points":  gorm.Expr("loyalty_points + ?", points),
		}).Error
}

func (r *customerRepo) NextSequence(_ context.Context, tx *gorm.DB) (int, error) {
	return nextSequence(tx, SeqCustomer)
}
