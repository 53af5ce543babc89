package repository

import (
	"context"

	"github.com/sangkips/receipts-api/internal/domain/entity"
	"github.com/sangkips/receipts-api/internal/domain/repository"
	"github.com/sangkips/receipts-api/pkg/pagination"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

// List retrieves all receipts, newest first
func (r *receiptRepository) List(ctx context.Context) ([]entity.Receipt, error) {
	var receipts []entity.Receipt
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

// ListPage retrieves one page of receipts, newest first, with the total count
func (r *receiptRepository) ListPage(ctx context.Context, params *pagination.PaginationParams) ([]entity.Receipt, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Receipt{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var receipts []entity.Receipt
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&receipts).Error
	if err != nil {
		return nil, 0, err
	}
	return receipts, total, nil
}

// ListSince retrieves receipts created at or after sinceMillis, newest first
func (r *receiptRepository) ListSince(ctx context.Context, sinceMillis int64) ([]entity.Receipt, error) {
	var receipts []entity.Receipt
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", sinceMillis).
		Order("created_at DESC").
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

// GetByID retrieves a receipt by ID, returning nil when it does not exist
func (r *receiptRepository) GetByID(ctx context.Context, id string) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&receipt).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &receipt, nil
}

// Create inserts a new receipt
func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

// Delete removes a receipt by ID
func (r *receiptRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Receipt{}).Error
}

// NextReceiptNumber returns max(receipt_number)+1, starting at 1
func (r *receiptRepository) NextReceiptNumber(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).
		Model(&entity.Receipt{}).
		Select("COALESCE(MAX(receipt_number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
