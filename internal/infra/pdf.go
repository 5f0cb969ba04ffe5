package infra

// pdf.go — receipt rendering with go-pdf/fpdf.
// Produces an A7-size thermal-style receipt:
//   - Company name, address and (optional) logo from settings
//   - Invoice number, date and customer code
//   - Item table (product name, qty, line total)
//   - Bold grand total, payment method and status
//
// The receipt is returned as raw bytes so the caller can stream it over HTTP
// or attach it to an email without touching disk.

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"showroom/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReceiptPDF renders a completed sale as a PDF receipt.
func GenerateReceiptPDF(sale *model.Sale, settings *model.Settings) ([]byte, error) {
	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	if img, format, err := decodeLogo(settings.CompanyLogo); err == nil {
		name := "company-logo"
		pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: format}, bytes.NewReader(img))
		pdf.ImageOptions(name, (pageW-14)/2, pdf.GetY(), 14, 0, true, fpdf.ImageOptions{ImageType: format}, 0, "")
		pdf.Ln(1)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 6, settings.CompanyName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, settings.CompanyAddress, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Invoice info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, "Invoice "+sale.InvoiceNo, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, sale.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, "Customer: "+sale.CustomerCode, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items ────────────────────────────────────────────────────────────────
	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // line total

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range sale.Items {
		name := item.ProductName
		if runes := []rune(name); len(runes) > 22 {
			name = string(runes[:21]) + "…"
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, item.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, sale.TotalSale.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Payment ("+sale.PaymentMethod+"):", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, sale.PaymentStatus, "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Thank you for shopping with us!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeLogo parses a base64 data URI ("data:image/png;base64,....") into raw
// image bytes plus the fpdf image type. Anything it cannot parse is treated
// as "no logo".
func decodeLogo(dataURI string) ([]byte, string, error) {
	if dataURI == "" {
		return nil, "", fmt.Errorf("pdf: no logo")
	}
	header, payload, ok := strings.Cut(dataURI, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") {
		return nil, "", fmt.Errorf("pdf: not an image data URI")
	}
	var format string
	switch {
	case strings.HasPrefix(header, "data:image/png"):
		format = "PNG"
	case strings.HasPrefix(header, "data:image/jpeg"), strings.HasPrefix(header, "data:image/jpg"):
		format = "JPG"
	default:
		return nil, "", fmt.Errorf("pdf: unsupported logo format")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: decode logo: %w", err)
	}
	return raw, format, nil
}
