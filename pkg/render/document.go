package render

import "time"

// ReceiptLine is one row of the items table on a rendered receipt.
type ReceiptLine struct {
	Description string
	Quantity    string
	UnitPrice   float64
	Subtotal    float64
}

// ReceiptDocument holds everything needed to render a single receipt as
// HTML or PDF. Logo and Signature carry raw image bytes; either may be
// empty, in which case the section is omitted.
type ReceiptDocument struct {
	BusinessName    string
	BusinessAddress string
	Logo            []byte
	Signature       []byte
	ReceiptNumber   int64
	Date            time.Time
	CustomerName    string
	Items           []ReceiptLine
	TotalAmount     float64
}

// ReportRow is one receipt line in a report table.
type ReportRow struct {
	Date          time.Time
	ReceiptNumber int64
	CustomerName  string
	Amount        float64
}

// ReportDocument holds an aggregated receipts report.
type ReportDocument struct {
	Title       string
	GeneratedAt time.Time
	PeriodLabel string
	TotalAmount float64
	Count       int
	Rows        []ReportRow
}

// detectImageType sniffs the image format from its magic bytes and returns
// the gofpdf image type string, or "" when the format is unsupported.
func detectImageType(data []byte) string {
	switch {
	case len(data) >= 8 && string(data[:8]) == "\x89PNG\r\n\x1a\n":
		return "PNG"
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8:
		return "JPEG"
	case len(data) >= 4 && string(data[:4]) == "GIF8":
		return "GIF"
	default:
		return ""
	}
}

// imageMIME returns the MIME type matching detectImageType, for data URIs.
func imageMIME(data []byte) string {
	switch detectImageType(data) {
	case "PNG":
		return "image/png"
	case "JPEG":
		return "image/jpeg"
	case "GIF":
		return "image/gif"
	default:
		return ""
	}
}
