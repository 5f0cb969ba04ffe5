package memory

import (
	"context"
	"time"

	"showroom/internal/dto"
	"showroom/internal/model"
	"showroom/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stockMovementRepo struct{ s *Store }

func NewStockMovementRepository(s *Store) repository.StockMovementRepository {
	return &stockMovementRepo{s: s}
}

func (r *stockMovementRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r *stockMovementRepo) List(_ context.Context, filter dto.MovementFilter) ([]model.StockMovement, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	// Newest first.
	matched := make([]model.StockMovement, 0, len(r.s.movements))
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if filter.ProductCode != "" && m.ProductCode != filter.ProductCode {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		matched = append(matched, m)
	}

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}
