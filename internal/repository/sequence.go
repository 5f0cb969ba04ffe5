package repository

import (
	"errors"

	"showroom/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sequence names used by the code generators.
const (
	SeqProduct  = "product"
	SeqCustomer = "customer"
	SeqSupplier = "supplier"
	SeqInvoice  = "invoice"
)

// nextSequence increments and returns the named counter inside tx. The row is
// locked for update so two concurrent transactions can never mint the same
// code.
func nextSequence(tx *gorm.DB, name string) (int, error) {
	var seq model.Sequence
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seq = model.Sequence{Name: name, Value: 1}
		return 1, tx.Create(&seq).Error
	}
	if err != nil {
		return 0, err
	}
	seq.Value++
	return seq.Value, tx.Save(&seq).Error
}
