package service

import (
	"context"
	"fmt"
	"time"

	"showroom/internal/dto"
	"showroom/internal/model"
	"showroom/internal/repository"

	"gorm.io/gorm"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	Get(ctx context.Context, code string) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, code string, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	RecordPayment(ctx context.Context, code string, req dto.RecordPaymentRequest) (*dto.SupplierResponse, error)
}

type supplierService struct {
	suppliers repository.SupplierRepository
	tx        repository.Transactor
	strict    bool
}

func NewSupplierService(suppliers repository.SupplierRepository, tx repository.Transactor, strict bool) SupplierService {
	return &supplierService{suppliers: suppliers, tx: tx, strict: strict}
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	var supplier model.Supplier
	err := s.tx.Atomically(ctx, func(tx *gorm.DB) error {
		n, err := s.suppliers.NextSequence(ctx, tx)
		if err != nil {
			return err
		}
		supplier = model.Supplier{
			Code:        fmt.Sprintf("SUP-%03d", n),
			Name:        req.Name,
			CompanyName: req.CompanyName,
			Mobile:      req.Mobile,
			Address:     req.Address,
		}
		return s.suppliers.CreateTx(tx, &supplier)
	})
	if err != nil {
		return nil, err
	}
	return supplierToResponse(&supplier), nil
}

func (s *supplierService) Get(ctx context.Context, code string) (*dto.SupplierResponse, error) {
	supplier, err := s.suppliers.FindByCode(ctx, code)
	if err != nil {
		return nil, notFound("supplier", code)
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, *supplierToResponse(&suppliers[i]))
	}
	return out, nil
}

// Update replaces contact details. DueBalance and LastPaymentDate only move
// via restocks and payments.
func (s *supplierService) Update(ctx context.Context, code string, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := s.suppliers.FindByCode(ctx, code)
	if err != nil {
		return nil, notFound("supplier", code)
	}
	supplier.Name = req.Name
	supplier.CompanyName = req.CompanyName
	supplier.Mobile = req.Mobile
	supplier.Address = req.Address
	if err := s.suppliers.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) RecordPayment(ctx context.Context, code string, req dto.RecordPaymentRequest) (*dto.SupplierResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, invalidInput("payment amount must be positive, got %s", req.Amount)
	}
	supplier, err := s.suppliers.FindByCode(ctx, code)
	if err != nil {
		return nil, notFound("supplier", code)
	}
	if s.strict && req.Amount.GreaterThan(supplier.DueBalance) {
		return nil, invalidInput("payment %s exceeds due balance %s", req.Amount, supplier.DueBalance)
	}

	err = s.tx.Atomically(ctx, func(tx *gorm.DB) error {
		return s.suppliers.RecordPaymentTx(tx, code, req.Amount, time.Now())
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.suppliers.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return supplierToResponse(updated), nil
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	resp := &dto.SupplierResponse{
		Code:        s.Code,
		Name:        s.Name,
		CompanyName: s.CompanyName,
		Mobile:      s.Mobile,
		Address:     s.Address,
		DueBalance:  s.DueBalance,
	}
	if s.LastPaymentDate != nil {
		formatted := s.LastPaymentDate.Format(time.RFC3339)
		resp.LastPaymentDate = &formatted
	}
	return resp
}
