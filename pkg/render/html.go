package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"
)

const receiptTemplateText = `<html>
  <head>
    <style>
      body { font-family: 'Helvetica'; padding: 20px; }
      .header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 20px; }
      .business-info { text-align: right; }
      table { width: 100%; border-collapse: collapse; margin-top: 20px; }
      th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
      th { background-color: #f2f2f2; }
      .total { margin-top: 20px; text-align: right; font-size: 18px; font-weight: bold; }
      .signature { margin-top: 50px; }
    </style>
  </head>
  <body>
    <div class="header">
      <div>{{if .LogoSrc}}<img src="{{.LogoSrc}}" style="width: 100px; height: auto;" />{{end}}</div>
      <div class="business-info">
        <h2>{{.BusinessName}}</h2>
        <p>{{.AddressHTML}}</p>
      </div>
    </div>

    <hr />

    <div>
      <p><strong>Receipt #:</strong> {{.ReceiptNumber}}</p>
      <p><strong>Date:</strong> {{.Date}}</p>
      <p><strong>Customer:</strong> {{.CustomerName}}</p>
    </div>

    <table>
      <thead>
        <tr>
          <th>Description</th>
          <th>Qty</th>
          <th>Price</th>
          <th>Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td>{{.Description}}</td>
          <td>{{.Quantity}}</td>
          <td>${{printf "%.2f" .UnitPrice}}</td>
          <td>${{printf "%.2f" .Subtotal}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="total">
      Total Amount: ${{printf "%.2f" .TotalAmount}}
    </div>

    <div class="signature">
      <p>Authorized Signature:</p>
      {{if .SignatureSrc}}<img src="{{.SignatureSrc}}" style="width: 150px; height: auto;" />{{end}}
    </div>
  </body>
</html>
`

var receiptTemplate = template.Must(template.New("receipt").Parse(receiptTemplateText))

type receiptTemplateData struct {
	BusinessName  string
	AddressHTML   template.HTML
	LogoSrc       template.URL
	SignatureSrc  template.URL
	ReceiptNumber int64
	Date          string
	CustomerName  string
	Items         []ReceiptLine
	TotalAmount   float64
}

// ReceiptHTML renders a receipt document as a standalone HTML page with the
// logo and signature inlined as base64 data URIs.
func ReceiptHTML(doc *ReceiptDocument) ([]byte, error) {
	name := doc.BusinessName
	if name == "" {
		name = "Business Name"
	}
	data := receiptTemplateData{
		BusinessName:  name,
		AddressHTML:   addressHTML(doc.BusinessAddress),
		LogoSrc:       imageDataURI(doc.Logo),
		SignatureSrc:  imageDataURI(doc.Signature),
		ReceiptNumber: doc.ReceiptNumber,
		Date:          doc.Date.Format("1/2/2006 3:04:05 PM"),
		CustomerName:  doc.CustomerName,
		Items:         doc.Items,
		TotalAmount:   doc.TotalAmount,
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render receipt html: %w", err)
	}
	return buf.Bytes(), nil
}

// addressHTML escapes the address and preserves its embedded line breaks.
func addressHTML(address string) template.HTML {
	escaped := template.HTMLEscapeString(address)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// imageDataURI inlines image bytes as a data URI, or "" when the bytes are
// absent or the format is unrecognized.
func imageDataURI(data []byte) template.URL {
	mime := imageMIME(data)
	if mime == "" {
		return ""
	}
	return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data))
}
