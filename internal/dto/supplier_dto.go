package dto

import "github.com/shopspring/decimal"

type CreateSupplierRequest struct {
	Name        string `json:"name"         validate:"required,min=2,max=120"`
	CompanyName string `json:"company_name" validate:"required,min=2,max=120"`
	Mobile      string `json:"mobile"`
	Address     string `json:"address"`
}

type UpdateSupplierRequest struct {
	Name        string `json:"name"         validate:"required,min=2,max=120"`
	CompanyName string `json:"company_name" validate:"required,min=2,max=120"`
	Mobile      string `json:"mobile"`
	Address     string `json:"address"`
}

type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

type SupplierResponse struct {
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	CompanyName     string          `json:"company_name"`
	Mobile          string          `json:"mobile"`
	Address         string          `json:"address"`
	DueBalance      decimal.Decimal `json:"due_balance"`
	LastPaymentDate *string         `json:"last_payment_date"`
}
