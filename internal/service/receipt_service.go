package service

import (
	"context"

	"showroom/internal/infra"
	"showroom/internal/repository"
	"showroom/internal/worker"
)

// ReceiptService renders receipts on demand and queues receipt emails.
type ReceiptService interface {
	Render(ctx context.Context, invoiceNo string) ([]byte, error)
	Email(ctx context.Context, invoiceNo, to string) error
}

type receiptService struct {
	sales     repository.SaleRepository
	customers repository.CustomerRepository
	settings  repository.SettingsRepository
	dispatch  *worker.Dispatcher // nil when email delivery is not configured
}

func NewReceiptService(
	sales repository.SaleRepository,
	customers repository.CustomerRepository,
	settings repository.SettingsRepository,
	dispatch *worker.Dispatcher,
) ReceiptService {
	return &receiptService{sales: sales, customers: customers, settings: settings, dispatch: dispatch}
}

func (s *receiptService) Render(ctx context.Context, invoiceNo string) ([]byte, error) {
	sale, err := s.sales.FindByInvoice(ctx, invoiceNo)
	if err != nil {
		return nil, notFound("invoice", invoiceNo)
	}
	profile, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return infra.GenerateReceiptPDF(sale, profile)
}

// Email queues a receipt email. An explicit recipient wins over the
// customer's stored address.
func (s *receiptService) Email(ctx context.Context, invoiceNo, to string) error {
	if s.dispatch == nil {
		return invalidInput("email delivery is not configured")
	}
	sale, err := s.sales.FindByInvoice(ctx, invoiceNo)
	if err != nil {
		return notFound("invoice", invoiceNo)
	}
	if to == "" {
		customer, err := s.customers.FindByCode(ctx, sale.CustomerCode)
		if err != nil {
			return notFound("customer", sale.CustomerCode)
		}
		to = customer.Email
	}
	if to == "" {
		return invalidInput("customer %s has no email address", sale.CustomerCode)
	}
	return s.dispatch.EnqueueReceiptEmail(ctx, worker.ReceiptEmailPayload{
		InvoiceNo: sale.InvoiceNo,
		To:        to,
	})
}
