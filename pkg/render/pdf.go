package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders receipt and report documents to PDF files.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDF renderer
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// RenderReceipt renders a single receipt document.
func (r *PDFRenderer) RenderReceipt(doc *ReceiptDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()

	// Header: logo on the left, business details right-aligned.
	if t := detectImageType(doc.Logo); t != "" {
		opts := gofpdf.ImageOptions{ImageType: t}
		pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(doc.Logo))
		pdf.ImageOptions("logo", 10, 10, 35, 0, false, opts, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(60, 12)
	name := doc.BusinessName
	if name == "" {
		name = "Business Name"
	}
	pdf.CellFormat(140, 8, tr(name), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range strings.Split(doc.BusinessAddress, "\n") {
		if line == "" {
			continue
		}
		pdf.SetX(60)
		pdf.CellFormat(140, 5, tr(line), "", 1, "R", false, 0, "")
	}

	if y := pdf.GetY(); y < 40 {
		pdf.SetY(40)
	}
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(190, 6, fmt.Sprintf("Receipt #: %d", doc.ReceiptNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 6, "Date: "+doc.Date.Format("1/2/2006 3:04:05 PM"), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 6, tr("Customer: "+doc.CustomerName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Items table.
	pdf.SetFillColor(242, 242, 242)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, "Price", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, "Total", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range doc.Items {
		pdf.CellFormat(90, 7, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, tr(item.Quantity), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", item.UnitPrice), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("$%.2f", item.Subtotal), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(190, 8, fmt.Sprintf("Total Amount: $%.2f", doc.TotalAmount), "", 1, "R", false, 0, "")

	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(190, 6, "Authorized Signature:", "", 1, "L", false, 0, "")
	if t := detectImageType(doc.Signature); t != "" {
		opts := gofpdf.ImageOptions{ImageType: t}
		pdf.RegisterImageOptionsReader("signature", opts, bytes.NewReader(doc.Signature))
		pdf.ImageOptions("signature", 10, pdf.GetY()+2, 50, 0, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderReport renders an aggregated receipts report.
func (r *PDFRenderer) RenderReport(doc *ReportDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(doc.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(190, 10, tr(doc.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(85, 85, 85)
	pdf.CellFormat(190, 5, "Generated: "+doc.GeneratedAt.Format("1/2/2006 3:04:05 PM"), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 5, "Period: "+doc.PeriodLabel, "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 5, fmt.Sprintf("Total Amount: $%.2f", doc.TotalAmount), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 5, fmt.Sprintf("Total Receipts: %d", doc.Count), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	pdf.SetFillColor(242, 242, 242)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(40, 7, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, "Receipt #", "1", 0, "L", true, 0, "")
	pdf.CellFormat(75, 7, "Customer", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range doc.Rows {
		customer := row.CustomerName
		if customer == "" {
			customer = "-"
		}
		pdf.CellFormat(40, 7, row.Date.Format("1/2/2006"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%d", row.ReceiptNumber), "1", 0, "L", false, 0, "")
		pdf.CellFormat(75, 7, tr(customer), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("$%.2f", row.Amount), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}
