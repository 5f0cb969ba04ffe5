package service

import (
	"context"
	"fmt"

	"showroom/internal/dto"
	"showroom/internal/model"
	"showroom/internal/repository"

	"gorm.io/gorm"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Get(ctx context.Context, code string) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, code string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
}

type customerService struct {
	customers repository.CustomerRepository
	tx        repository.Transactor
}

func NewCustomerService(customers repository.CustomerRepository, tx repository.Transactor) CustomerService {
	return &customerService{customers: customers, tx: tx}
}

func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	tier := req.LoyaltyTier
	if tier == "" {
		tier = model.TierBronze
	}

	var customer model.Customer
	err := s.tx.Atomically(ctx, func(tx *gorm.DB) error {
		n, err := s.customers.NextSequence(ctx, tx)
		if err != nil {
			return err
		}
		customer = model.Customer{
			Code:        fmt.Sprintf("CUST-%03d", n),
			Name:        req.Name,
			Phone:       req.Phone,
			Email:       req.Email,
			Address:     req.Address,
			LoyaltyTier: tier,
		}
		return s.customers.CreateTx(tx, &customer)
	})
	if err != nil {
		return nil, err
	}
	return customerToResponse(&customer), nil
}

func (s *customerService) Get(ctx context.Context, code string) (*dto.CustomerResponse, error) {
	customer, err := s.customers.FindByCode(ctx, code)
	if err != nil {
		return nil, notFound("customer", code)
	}
	return customerToResponse(customer), nil
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, *customerToResponse(&customers[i]))
	}
	return out, nil
}

// Update replaces contact details and the tier. LoyaltyPoints and
// TotalPurchases are sale-driven and cannot be edited here.
func (s *customerService) Update(ctx context.Context, code string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := s.customers.FindByCode(ctx, code)
	if err != nil {
		return nil, notFound("customer", code)
	}
	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.Address = req.Address
	customer.LoyaltyTier = req.LoyaltyTier
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		Code:           c.Code,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		LoyaltyTier:    c.LoyaltyTier,
		LoyaltyPoints:  c.LoyaltyPoints,
		TotalPurchases: c.TotalPurchases,
	}
}
