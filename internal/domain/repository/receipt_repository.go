package repository

import (
	"context"

	"github.com/sangkips/receipts-api/internal/domain/entity"
	"github.com/sangkips/receipts-api/pkg/pagination"
)

// ReceiptRepository defines the interface for receipt data access. All list
// operations return receipts ordered by creation time descending.
type ReceiptRepository interface {
	List(ctx context.Context) ([]entity.Receipt, error)
	ListPage(ctx context.Context, params *pagination.PaginationParams) ([]entity.Receipt, int64, error)
	// ListSince returns receipts created at or after the given unix
	// millisecond timestamp.
	ListSince(ctx context.Context, sinceMillis int64) ([]entity.Receipt, error)
	GetByID(ctx context.Context, id string) (*entity.Receipt, error)
	Create(ctx context.Context, receipt *entity.Receipt) error
	Delete(ctx context.Context, id string) error
	// NextReceiptNumber returns the next free sequential receipt number.
	NextReceiptNumber(ctx context.Context) (int64, error)
}
