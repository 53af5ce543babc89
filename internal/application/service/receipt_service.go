package service

import (
	"context"
	"strings"
	"time"

	"github.com/sangkips/receipts-api/internal/domain/entity"
	"github.com/sangkips/receipts-api/internal/domain/repository"
	"github.com/sangkips/receipts-api/pkg/apperror"
	"github.com/sangkips/receipts-api/pkg/pagination"
	"github.com/sangkips/receipts-api/pkg/utils"
)

// ReceiptService handles receipt composition and browsing
type ReceiptService struct {
	receiptRepo  repository.ReceiptRepository
	settingsRepo repository.SettingsRepository
	now          func() time.Time
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repository.ReceiptRepository, settingsRepo repository.SettingsRepository) *ReceiptService {
	return &ReceiptService{
		receiptRepo:  receiptRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// LineItemInput is one line item of a receipt being composed.
type LineItemInput struct {
	ID          string
	Description string
	Quantity    string
	UnitPrice   string
}

// CreateReceiptInput represents the input for creating a receipt
type CreateReceiptInput struct {
	CustomerName string
	Items        []LineItemInput
}

// CreateReceipt validates and persists a new receipt. The current business
// settings are embedded as a point-in-time snapshot, so later settings
// edits never change how this receipt renders.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.CustomerName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}
	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "Add at least one item"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	items := make([]entity.LineItem, 0, len(input.Items))
	var total float64
	for _, in := range input.Items {
		item := entity.LineItem{
			ID:          in.ID,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
		}
		if item.Quantity == "" {
			item.Quantity = "1"
		}
		if item.UnitPrice == "" {
			item.UnitPrice = "0.00"
		}
		total += item.Subtotal()
		items = append(items, item)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	encodedItems, err := entity.EncodeLineItems(items)
	if err != nil {
		return nil, err
	}
	encodedSnapshot, err := entity.EncodeSnapshot(settings.Snapshot())
	if err != nil {
		return nil, err
	}

	number, err := s.receiptRepo.NextReceiptNumber(ctx)
	if err != nil {
		return nil, err
	}

	receipt := &entity.Receipt{
		ID:               utils.NewUUID().String(),
		ReceiptNumber:    number,
		CreatedAt:        s.now().UnixMilli(),
		CustomerName:     input.CustomerName,
		Items:            encodedItems,
		TotalAmount:      total,
		BusinessSnapshot: encodedSnapshot,
	}
	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// ListReceipts returns all receipts newest first, optionally narrowed to
// the receipts created on the given local calendar day.
func (s *ReceiptService) ListReceipts(ctx context.Context, filterDate *time.Time) ([]entity.Receipt, error) {
	receipts, err := s.receiptRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filterDate == nil {
		return receipts, nil
	}
	filtered := make([]entity.Receipt, 0, len(receipts))
	for _, r := range receipts {
		if sameCalendarDay(r.CreatedTime().In(filterDate.Location()), *filterDate) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// ListReceiptsPage returns one page of receipts, newest first.
func (s *ReceiptService) ListReceiptsPage(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Receipt], error) {
	receipts, total, err := s.receiptRepo.ListPage(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(receipts, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// GetReceipt retrieves a receipt by ID
func (s *ReceiptService) GetReceipt(ctx context.Context, id string) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// DeleteReceipt removes a receipt by ID
func (s *ReceiptService) DeleteReceipt(ctx context.Context, id string) error {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return apperror.NewNotFoundError("Receipt")
	}
	return s.receiptRepo.Delete(ctx, id)
}
