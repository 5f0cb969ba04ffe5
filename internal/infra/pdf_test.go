package infra

import (
	"testing"
	"time"

	"showroom/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReceiptPDF(t *testing.T) {
	settings := model.DefaultSettings()
	sale := &model.Sale{
		InvoiceNo:     "INV-0001",
		CustomerCode:  "CUST-001",
		TotalSale:     decimal.NewFromInt(3000),
		PaymentMethod: model.PaymentCash,
		PaymentStatus: model.StatusPaid,
		CreatedAt:     time.Now(),
		Items: []model.SaleItem{
			{ProductName: "Classic Blue Jeans", Quantity: 2, UnitPrice: decimal.NewFromInt(1500), Total: decimal.NewFromInt(3000)},
		},
	}

	data, err := GenerateReceiptPDF(sale, &settings)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateReceiptPDF_TruncatesLongNamesOnRunes(t *testing.T) {
	settings := model.DefaultSettings()
	sale := &model.Sale{
		InvoiceNo:     "INV-0003",
		CustomerCode:  "CUST-001",
		TotalSale:     decimal.NewFromInt(2500),
		PaymentMethod: model.PaymentCash,
		PaymentStatus: model.StatusPaid,
		CreatedAt:     time.Now(),
		Items: []model.SaleItem{
			// multi-byte name longer than the item column; truncation must not
			// split a rune mid-sequence
			{ProductName: "জামদানি শাড়ি — ঐতিহ্যবাহী ঢাকাই বুনন", Quantity: 1,
				UnitPrice: decimal.NewFromInt(2500), Total: decimal.NewFromInt(2500)},
		},
	}

	data, err := GenerateReceiptPDF(sale, &settings)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateReceiptPDF_IgnoresBadLogo(t *testing.T) {
	settings := model.DefaultSettings()
	settings.CompanyLogo = "not-a-data-uri"
	sale := &model.Sale{InvoiceNo: "INV-0002", CreatedAt: time.Now()}

	data, err := GenerateReceiptPDF(sale, &settings)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestDecodeLogo(t *testing.T) {
	// 1x1 transparent PNG
	uri := "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="
	raw, format, err := decodeLogo(uri)
	require.NoError(t, err)
	assert.Equal(t, "PNG", format)
	assert.NotEmpty(t, raw)

	_, _, err = decodeLogo("data:text/plain;base64,aGVsbG8=")
	assert.Error(t, err)

	_, _, err = decodeLogo("")
	assert.Error(t, err)
}
