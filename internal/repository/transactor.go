package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor runs fn atomically against the backing store. Composite
// operations (a sale touches four stores, a restock three) always go through
// Atomically so that either every sub-update lands or none does, and so no
// observer ever sees the stores half-updated.
//
// The gorm implementation opens a real DB transaction; the in-memory store
// serializes writers and restores a snapshot when fn fails. fn receives the
// live *gorm.DB inside a DB transaction, or nil on the memory backend —
// repository Tx methods accept either.
type Transactor interface {
	Atomically(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTransactor struct{ db *gorm.DB }

func NewTransactor(db *gorm.DB) Transactor { return &gormTransactor{db: db} }

func (t *gormTransactor) Atomically(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}
