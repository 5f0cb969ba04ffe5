package worker

// receipt_worker.go
// Sends PDF receipts to customer emails after a completed sale. The SMTP
// send goes through a circuit breaker so a dead relay fails fast instead of
// stalling the pool.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"showroom/internal/infra"
	"showroom/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	sendAttempts = 3
	sendBackoff  = 2 * time.Second
)

// ReceiptEmailPayload is the job envelope for receipt emails.
type ReceiptEmailPayload struct {
	InvoiceNo string `json:"invoice_no"`
	To        string `json:"to"`
}

// ReceiptWorker renders and emails the receipt for a recorded sale.
type ReceiptWorker struct {
	sales    repository.SaleRepository
	settings repository.SettingsRepository
	mailer   *infra.Mailer
	breaker  *infra.CircuitBreaker
}

func NewReceiptWorker(
	sales repository.SaleRepository,
	settings repository.SettingsRepository,
	mailer *infra.Mailer,
	breaker *infra.CircuitBreaker,
) *ReceiptWorker {
	return &ReceiptWorker{sales: sales, settings: settings, mailer: mailer, breaker: breaker}
}

// Process renders the PDF and sends it. A failure here never surfaces to the
// sale that triggered it.
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReceiptEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return
	}
	if payload.To == "" {
		log.Warn().Str("invoice", payload.InvoiceNo).Msg("receipt_worker: empty recipient, skipping")
		return
	}

	sale, err := w.sales.FindByInvoice(ctx, payload.InvoiceNo)
	if err != nil {
		log.Error().Err(err).Str("invoice", payload.InvoiceNo).Msg("receipt_worker: sale not found")
		return
	}
	profile, err := w.settings.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("receipt_worker: load settings")
		return
	}

	pdfData, err := infra.GenerateReceiptPDF(sale, profile)
	if err != nil {
		log.Error().Err(err).Str("invoice", sale.InvoiceNo).Msg("receipt_worker: render PDF")
		return
	}

	subject := fmt.Sprintf("Your receipt %s from %s", sale.InvoiceNo, profile.CompanyName)
	body := fmt.Sprintf("Thank you for your purchase. Your receipt %s is attached.", sale.InvoiceNo)
	fileName := fmt.Sprintf("receipt_%s.pdf", sale.InvoiceNo)

	for attempt := 1; ; attempt++ {
		err = w.breaker.Execute(func() error {
			return w.mailer.SendReceipt(payload.To, subject, body, pdfData, fileName)
		})
		if err == nil {
			break
		}
		// An open breaker means the relay is known-down; retrying now only
		// burns the backoff budget.
		if errors.Is(err, infra.ErrCircuitOpen) || attempt == sendAttempts {
			log.Error().Err(err).Str("to", payload.To).Str("invoice", sale.InvoiceNo).
				Int("attempts", attempt).Msg("receipt_worker: send failed")
			return
		}
		log.Warn().Err(err).Str("invoice", sale.InvoiceNo).
			Int("attempt", attempt).Msg("receipt_worker: send failed, retrying")
		select {
		case <-ctx.Done():
			return
		case <-time.After(sendBackoff):
		}
	}
	log.Info().Str("to", payload.To).Str("invoice", sale.InvoiceNo).Msg("receipt_worker: receipt sent")
}
