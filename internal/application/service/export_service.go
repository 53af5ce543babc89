package service

import (
	"context"
	"fmt"
	"log"

	"github.com/sangkips/receipts-api/internal/domain/entity"
	"github.com/sangkips/receipts-api/internal/domain/repository"
	"github.com/sangkips/receipts-api/pkg/apperror"
	"github.com/sangkips/receipts-api/pkg/render"
	"github.com/sangkips/receipts-api/pkg/storage"
)

// ExportService renders single receipts as shareable HTML or PDF documents
// using the business snapshot embedded at creation time.
type ExportService struct {
	receiptRepo repository.ReceiptRepository
	store       *storage.Store
	renderer    *render.PDFRenderer
}

// NewExportService creates a new export service
func NewExportService(receiptRepo repository.ReceiptRepository, store *storage.Store, renderer *render.PDFRenderer) *ExportService {
	return &ExportService{
		receiptRepo: receiptRepo,
		store:       store,
		renderer:    renderer,
	}
}

// ReceiptHTML renders the receipt as a standalone HTML document with the
// snapshot branding and inlined images.
func (s *ExportService) ReceiptHTML(ctx context.Context, id string) ([]byte, error) {
	doc, err := s.buildDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	return render.ReceiptHTML(doc)
}

// ReceiptPDF renders the receipt as a PDF file in the export directory and
// returns the file path.
func (s *ExportService) ReceiptPDF(ctx context.Context, id string) (string, error) {
	doc, err := s.buildDocument(ctx, id)
	if err != nil {
		return "", err
	}
	data, err := s.renderer.RenderReceipt(doc)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("receipt_%d.pdf", doc.ReceiptNumber)
	return s.store.WriteExport(name, data)
}

// buildDocument assembles the renderable document from the stored receipt.
// A missing or unreadable logo/signature is not fatal: the export proceeds
// without that image.
func (s *ExportService) buildDocument(ctx context.Context, id string) (*render.ReceiptDocument, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	items, err := receipt.LineItems()
	if err != nil {
		return nil, err
	}
	snapshot, err := receipt.Snapshot()
	if err != nil {
		return nil, err
	}

	doc := &render.ReceiptDocument{
		BusinessName:    snapshot.BusinessName,
		BusinessAddress: snapshot.BusinessAddress,
		ReceiptNumber:   receipt.ReceiptNumber,
		Date:            receipt.CreatedTime(),
		CustomerName:    receipt.CustomerName,
		TotalAmount:     receipt.TotalAmount,
	}
	for _, item := range items {
		doc.Items = append(doc.Items, render.ReceiptLine{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   entity.ParseAmount(item.UnitPrice),
			Subtotal:    item.Subtotal(),
		})
	}

	if snapshot.LogoURI != "" {
		if data, err := s.store.ReadAsset(snapshot.LogoURI); err != nil {
			log.Printf("Warning: logo unreadable for receipt %s: %v", id, err)
		} else {
			doc.Logo = data
		}
	}
	if snapshot.SignatureURI != "" {
		if data, err := s.store.ReadAsset(snapshot.SignatureURI); err != nil {
			log.Printf("Warning: signature unreadable for receipt %s: %v", id, err)
		} else {
			doc.Signature = data
		}
	}
	return doc, nil
}
